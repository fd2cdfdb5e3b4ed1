package instructors

import (
	"encoding/json"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/util/validation"
	"strings"
)

// instructor roles
const (
	CoOwner  = "Co-owner"
	Manager  = "Manager"
	Observer = "Observer"
	Tutor    = "Tutor"
	Custom   = "Custom"
)

// instructor of a course. An instructor is identified by its email within the course and is linked to a user account
// once it joins the course
type Instructor struct {
	db.ABucketElement
	CourseID              string `json:"course_id" validate:"required,courseid"`
	UserName              string `json:"user_name"`
	Name                  string `json:"name" validate:"required,max=100"`
	Email                 string `json:"email" validate:"required,email"`
	Role                  string `json:"role" validate:"oneof=Co-owner Manager Observer Tutor Custom"`
	DisplayedName         string `json:"displayed_name" validate:"max=100"`
	IsDisplayedToStudents bool   `json:"is_displayed_to_students"`
	IsArchived            bool   `json:"is_archived"`
}

func (i *Instructor) Key() []byte {
	return Key(i.CourseID, i.Email)
}

func (i *Instructor) Bucket() []byte {
	return []byte(db.Instructors)
}

// the key of the instructor with the given email in the given course
func Key(courseId, email string) []byte {
	return append(courses.KeyPrefix(courseId), []byte(strings.ToLower(email))...)
}

// returns true if the instructor is linked to a user account
func (i *Instructor) IsRegistered() bool {
	return i.UserName != ""
}

// create a new instructor in the course with the given id. The course must exist when withDbUpdate is set
func NewInstructor(instructor *Instructor, asUser string, withDbUpdate bool) (*Instructor, error) {
	if instructor.Role == "" {
		instructor.Role = CoOwner
	}
	if instructor.DisplayedName == "" {
		instructor.DisplayedName = "Instructor"
	}
	if err := validation.Struct(instructor); err != nil {
		return nil, err
	}
	if withDbUpdate {
		if _, err := courses.Get(instructor.CourseID); err != nil {
			return nil, err
		}
		if err := db.Insert(asUser, instructor); err != nil {
			return nil, err
		}
	}
	return instructor, nil
}

// return all instructors of the course with the given id, ordered by email
func GetForCourse(courseId string) ([]*Instructor, error) {
	var instructors []*Instructor
	if err := db.QueryBucketPrefix([]byte(db.Instructors), courses.KeyPrefix(courseId), func(_, elementBytes []byte) error {
		instructor := &Instructor{}
		if err := json.Unmarshal(elementBytes, instructor); err != nil {
			return err
		}
		instructors = append(instructors, instructor)
		return nil
	}); err != nil {
		return nil, err
	}
	return instructors, nil
}

// return the instructor of the course with the given id which is linked to the given user name. Returns nil, and no
// error, when there is no such instructor
func GetForUser(courseId, userName string) (*Instructor, error) {
	if userName == "" {
		return nil, nil
	}
	var found *Instructor
	if err := db.QueryBucketPrefix([]byte(db.Instructors), courses.KeyPrefix(courseId), func(_, elementBytes []byte) error {
		instructor := &Instructor{}
		if err := json.Unmarshal(elementBytes, instructor); err != nil {
			return err
		}
		if instructor.UserName == userName {
			found = instructor
			return &db.ErrStopQuery{}
		}
		return nil
	}); err != nil {
		if _, ok := err.(*db.ErrElementsLeftToProcess); !ok {
			return nil, err
		}
	}
	return found, nil
}
