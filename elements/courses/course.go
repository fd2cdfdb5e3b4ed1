package courses

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/DAv10195/course_details_server/util/validation"
	"time"
)

const defTimeZone = "UTC"

// course
type Course struct {
	db.ABucketElement
	ID       string `json:"id" validate:"required,courseid"`
	Name     string `json:"name" validate:"required,max=64"`
	TimeZone string `json:"time_zone"`
}

func (c *Course) Key() []byte {
	return []byte(c.ID)
}

func (c *Course) Bucket() []byte {
	return []byte(db.Courses)
}

// the prefix of the keys of all elements (instructors, students) that belong to the course with the given id
func KeyPrefix(courseId string) []byte {
	return []byte(courseId + db.KeySeparator)
}

// create a new course with the given id and name
func NewCourse(id, name, timeZone, asUser string, withDbUpdate bool) (*Course, error) {
	if timeZone == "" {
		timeZone = defTimeZone
	}
	course := &Course{ID: id, Name: name, TimeZone: timeZone}
	if err := validation.Struct(course); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(timeZone); err != nil {
		return nil, &courseerr.ErrInsufficientData{Message: fmt.Sprintf("unknown time zone \"%s\"", timeZone)}
	}
	if withDbUpdate {
		if err := db.Insert(asUser, course); err != nil {
			return nil, err
		}
	}
	return course, nil
}

// return the course with the given id if it exists
func Get(id string) (*Course, error) {
	courseBytes, err := db.GetFromBucket([]byte(db.Courses), []byte(id))
	if err != nil {
		return nil, err
	}
	course := &Course{}
	if err := json.Unmarshal(courseBytes, course); err != nil {
		return nil, err
	}
	return course, nil
}

// delete the given course along with all of its instructors and students
func Delete(course *Course) error {
	return db.DeleteWithPrefix(KeyPrefix(course.ID), [][]byte{[]byte(db.Instructors), []byte(db.Students)}, course)
}
