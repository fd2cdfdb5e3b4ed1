package pages

import (
	"fmt"
	"github.com/DAv10195/course_details_server/elements/instructors"
	"github.com/DAv10195/course_details_server/elements/students"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/gatekeeper"
	"github.com/DAv10195/course_details_server/logic"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/DAv10195/course_details_server/util/htmltable"
	"github.com/DAv10195/course_details_server/views"
)

// request parameters of the instructor course details page
const (
	ParamCourseId             = "courseid"
	ParamCsvToHtmlTableNeeded = "csvtohtmltable"

	ActionInstructorCourseDetails = "instructorCourseDetails"
)

// data common to all pages: the account the page is rendered for
type PageData struct {
	Account *users.User `json:"account"`
}

type CourseDetailsPageData struct {
	PageData
	Instructor                   *instructors.Instructor    `json:"instructor,omitempty"`
	CourseDetails                *logic.CourseDetailsBundle `json:"course_details,omitempty"`
	Instructors                  []*instructors.Instructor  `json:"instructors,omitempty"`
	Students                     []*students.Student        `json:"students,omitempty"`
	StudentListHtmlTableAsString string                     `json:"student_list_html_table,omitempty"`
}

type CourseDetailsRequest struct {
	CourseID string
	// only the student list, as an HTML table, is needed (ajax loading of the table in the page)
	CsvToHtmlTableNeeded bool
	Account              *users.User
}

// the outcome of a page action: which view to render, with what data, and the note to record in the admin activity
// log
type Result struct {
	View          string
	IsFragment    bool
	Data          *CourseDetailsPageData
	StatusToAdmin string
}

// shows the details page of a course to one of its instructors
type CourseDetailsPageAction struct {
	InstructorLookup    InstructorLookup
	CourseLookup        CourseLookup
	AccessVerifier      AccessVerifier
	CourseDetailsLoader CourseDetailsLoader
	InstructorLister    InstructorLister
	StudentLister       StudentLister
	RosterExporter      RosterExporter
	FormatTable         TableFormatter
}

// returns an action whose capabilities are all served by the given logic and gate keeper
func NewCourseDetailsPageAction(l *logic.Logic, g *gatekeeper.GateKeeper) *CourseDetailsPageAction {
	return &CourseDetailsPageAction{
		InstructorLookup:    l,
		CourseLookup:        l,
		AccessVerifier:      g,
		CourseDetailsLoader: l,
		InstructorLister:    l,
		StudentLister:       l,
		RosterExporter:      l,
		FormatTable:         htmltable.FromCsv,
	}
}

// errors of collaborators are returned as is
func (a *CourseDetailsPageAction) Execute(req *CourseDetailsRequest) (*Result, error) {
	if req.CourseID == "" {
		return nil, &courseerr.ErrInvalidArgument{Message: fmt.Sprintf("missing \"%s\" parameter", ParamCourseId)}
	}
	if req.Account == nil {
		return nil, &courseerr.ErrInvalidArgument{Message: "missing account"}
	}
	instructor, err := a.InstructorLookup.GetInstructorForAccount(req.CourseID, req.Account.UserName)
	if err != nil {
		return nil, err
	}
	course, err := a.CourseLookup.GetCourse(req.CourseID)
	if err != nil {
		return nil, err
	}
	if err := a.AccessVerifier.VerifyAccessible(instructor, course); err != nil {
		return nil, err
	}
	data := &CourseDetailsPageData{PageData: PageData{Account: req.Account.Public()}}
	if req.CsvToHtmlTableNeeded {
		csvText, err := a.RosterExporter.GetCourseStudentListAsCsv(req.CourseID, req.Account.UserName)
		if err != nil {
			return nil, err
		}
		if data.StudentListHtmlTableAsString, err = a.FormatTable(csvText); err != nil {
			return nil, err
		}
		return &Result{
			View:          views.InstructorCourseDetails,
			IsFragment:    true,
			Data:          data,
			StatusToAdmin: fmt.Sprintf("instructorCourseDetails Page Ajax Html table Load: Viewing Student List Table for Course [%s]", req.CourseID),
		}, nil
	}
	courseDetails, err := a.CourseDetailsLoader.GetCourseDetails(req.CourseID)
	if err != nil {
		return nil, err
	}
	courseInstructors, err := a.InstructorLister.GetInstructorsForCourse(req.CourseID)
	if err != nil {
		return nil, err
	}
	courseStudents, err := a.StudentLister.GetStudentsForCourse(req.CourseID)
	if err != nil {
		return nil, err
	}
	students.SortByNameAndThenByEmail(courseStudents)
	data.Instructor = instructor
	data.CourseDetails = courseDetails
	data.Instructors = courseInstructors
	data.Students = courseStudents
	return &Result{
		View:          views.InstructorCourseDetails,
		Data:          data,
		StatusToAdmin: fmt.Sprintf("instructorCourseDetails Page Load: Viewing Course Details for Course [%s]", req.CourseID),
	}, nil
}
