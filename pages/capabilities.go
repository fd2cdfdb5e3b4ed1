package pages

import (
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	"github.com/DAv10195/course_details_server/elements/students"
	"github.com/DAv10195/course_details_server/logic"
)

// resolves the instructor of a course linked to an account. Fails with ErrEntityNotFound if the course doesn't exist
type InstructorLookup interface {
	GetInstructorForAccount(courseId, userName string) (*instructors.Instructor, error)
}

type CourseLookup interface {
	GetCourse(courseId string) (*courses.Course, error)
}

// decides whether an instructor may view a course. Fails with ErrAccessDenied when it may not
type AccessVerifier interface {
	VerifyAccessible(instructor *instructors.Instructor, course *courses.Course) error
}

type CourseDetailsLoader interface {
	GetCourseDetails(courseId string) (*logic.CourseDetailsBundle, error)
}

type InstructorLister interface {
	GetInstructorsForCourse(courseId string) ([]*instructors.Instructor, error)
}

type StudentLister interface {
	GetStudentsForCourse(courseId string) ([]*students.Student, error)
}

type RosterExporter interface {
	GetCourseStudentListAsCsv(courseId, userName string) (string, error)
}

// converts CSV text to an HTML table
type TableFormatter func(csvText string) (string, error)
