package logic

import (
	"bytes"
	"encoding/csv"
	"github.com/DAv10195/course_details_server/elements/students"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
)

const (
	statusJoined    = "Joined"
	statusYetToJoin = "Yet to join"
)

// return the student list of the given course as CSV. The requesting user must be an instructor of the course
func (l *Logic) GetCourseStudentListAsCsv(courseId, userName string) (string, error) {
	course, err := l.GetCourse(courseId)
	if err != nil {
		return "", err
	}
	instructor, err := l.GetInstructorForAccount(courseId, userName)
	if err != nil {
		return "", err
	}
	if instructor == nil {
		return "", &courseerr.ErrAccessDenied{User: userName, Resource: "the student list of course " + courseId, Message: "not an instructor of the course"}
	}
	courseStudents, err := students.GetForCourse(courseId)
	if err != nil {
		return "", err
	}
	students.SortBySectionAndThenByTeam(courseStudents)
	hasSections := false
	for _, student := range courseStudents {
		if student.Section != students.DefaultSection {
			hasSections = true
			break
		}
	}
	records := [][]string{
		{"Course ID", course.ID},
		{"Course Name", course.Name},
		{},
		{},
	}
	header := []string{"Team", "Full Name", "Last Name", "Status", "Email"}
	if hasSections {
		header = append([]string{"Section"}, header...)
	}
	records = append(records, header)
	for _, student := range courseStudents {
		status := statusYetToJoin
		if student.IsRegistered() {
			status = statusJoined
		}
		record := []string{student.Team, student.Name, student.LastName, status, student.Email}
		if hasSections {
			record = append([]string{student.Section}, record...)
		}
		records = append(records, record)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return "", err
	}
	return buf.String(), nil
}
