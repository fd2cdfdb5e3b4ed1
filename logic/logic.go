// course logic: the lookups and aggregations the instructor pages are built from
package logic

import (
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	"github.com/DAv10195/course_details_server/elements/students"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
)

const courseEntity = "course"

// course logic backed by the DB
type Logic struct{}

func New() *Logic {
	return &Logic{}
}

// return the course with the given id. Fails with ErrEntityNotFound if there is no such course
func (l *Logic) GetCourse(courseId string) (*courses.Course, error) {
	course, err := courses.Get(courseId)
	if err != nil {
		if _, ok := err.(*db.ErrKeyNotFoundInBucket); ok {
			return nil, &courseerr.ErrEntityNotFound{Entity: courseEntity, ID: courseId}
		}
		return nil, err
	}
	return course, nil
}

// return the instructor of the given course linked to the given user name. Fails with ErrEntityNotFound if the course
// doesn't exist and returns nil, with no error, if the user is not an instructor of the course
func (l *Logic) GetInstructorForAccount(courseId, userName string) (*instructors.Instructor, error) {
	if _, err := l.GetCourse(courseId); err != nil {
		return nil, err
	}
	return instructors.GetForUser(courseId, userName)
}

// return all instructors of the given course
func (l *Logic) GetInstructorsForCourse(courseId string) ([]*instructors.Instructor, error) {
	return instructors.GetForCourse(courseId)
}

// return all students of the given course
func (l *Logic) GetStudentsForCourse(courseId string) ([]*students.Student, error) {
	return students.GetForCourse(courseId)
}
