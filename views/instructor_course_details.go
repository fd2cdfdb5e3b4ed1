package views

const instructorCourseDetailsFragment = `{{ trusted .StudentListHtmlTableAsString }}`

const instructorCourseDetailsPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Course Details</title>
</head>
<body>
<p class="account">Signed in as {{ .Account.UserName }}</p>
{{ with .CourseDetails }}
<h1>Course Details</h1>
<table class="table course-summary">
<tr><th>Course ID</th><td id="courseid">{{ .Course.ID }}</td></tr>
<tr><th>Course Name</th><td id="coursename">{{ .Course.Name }}</td></tr>
<tr><th>Sections</th><td id="total-sections">{{ .Stats.SectionsTotal }}</td></tr>
<tr><th>Teams</th><td id="total-teams">{{ .Stats.TeamsTotal }}</td></tr>
<tr><th>Total students</th><td id="total-students">{{ .Stats.StudentsTotal }}</td></tr>
<tr><th>Unregistered students</th><td id="unregistered-students">{{ .Stats.UnregisteredTotal }}</td></tr>
</table>
{{ end }}
<h2>Instructors</h2>
<table class="table instructors">
<tr><th>Name</th><th>Email</th><th>Role</th><th>Displayed as</th></tr>
{{ range .Instructors }}<tr><td>{{ .Name }}</td><td>{{ .Email }}</td><td>{{ .Role }}</td><td>{{ .DisplayedName }}</td></tr>
{{ end }}</table>
<h2>Students</h2>
<table class="table students">
<tr><th>Section</th><th>Team</th><th>Name</th><th>Email</th><th>Status</th></tr>
{{ range .Students }}<tr class="student"><td>{{ .Section }}</td><td>{{ .Team }}</td><td>{{ .Name }}</td><td>{{ .Email }}</td><td>{{ if .IsRegistered }}Joined{{ else }}Yet to join{{ end }}</td></tr>
{{ end }}</table>
{{ with .CourseDetails }}<a id="student-list-table-link" href="?courseid={{ .Course.ID }}&amp;csvtohtmltable=true">View student list as table</a>{{ end }}
</body>
</html>
`
