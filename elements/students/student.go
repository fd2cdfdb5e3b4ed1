package students

import (
	"encoding/json"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/util/validation"
	"sort"
	"strings"
)

// the section of students that were not assigned to one
const DefaultSection = "None"

// student of a course. A student is identified by its email within the course and is linked to a user account once it
// joins the course
type Student struct {
	db.ABucketElement
	CourseID string `json:"course_id" validate:"required,courseid"`
	UserName string `json:"user_name"`
	Name     string `json:"name" validate:"required,max=100"`
	LastName string `json:"last_name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Section  string `json:"section" validate:"max=60"`
	Team     string `json:"team" validate:"required,max=60"`
	Comments string `json:"comments" validate:"max=500"`
}

func (s *Student) Key() []byte {
	return Key(s.CourseID, s.Email)
}

func (s *Student) Bucket() []byte {
	return []byte(db.Students)
}

// the key of the student with the given email in the given course
func Key(courseId, email string) []byte {
	return append(courses.KeyPrefix(courseId), []byte(strings.ToLower(email))...)
}

// returns true if the student is linked to a user account
func (s *Student) IsRegistered() bool {
	return s.UserName != ""
}

// enroll a new student in the course with the given id. The course must exist when withDbUpdate is set
func NewStudent(student *Student, asUser string, withDbUpdate bool) (*Student, error) {
	if student.Section == "" {
		student.Section = DefaultSection
	}
	if student.LastName == "" {
		nameParts := strings.Fields(student.Name)
		if len(nameParts) > 0 {
			student.LastName = nameParts[len(nameParts)-1]
		}
	}
	if err := validation.Struct(student); err != nil {
		return nil, err
	}
	if withDbUpdate {
		if _, err := courses.Get(student.CourseID); err != nil {
			return nil, err
		}
		if err := db.Insert(asUser, student); err != nil {
			return nil, err
		}
	}
	return student, nil
}

// return all students of the course with the given id, ordered by email
func GetForCourse(courseId string) ([]*Student, error) {
	var students []*Student
	if err := db.QueryBucketPrefix([]byte(db.Students), courses.KeyPrefix(courseId), func(_, elementBytes []byte) error {
		student := &Student{}
		if err := json.Unmarshal(elementBytes, student); err != nil {
			return err
		}
		students = append(students, student)
		return nil
	}); err != nil {
		return nil, err
	}
	return students, nil
}

// sort the given students by name and then, for equal names, by email
func SortByNameAndThenByEmail(students []*Student) {
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].Name != students[j].Name {
			return students[i].Name < students[j].Name
		}
		return students[i].Email < students[j].Email
	})
}

// sort the given students by section, then team, then name and then email
func SortBySectionAndThenByTeam(students []*Student) {
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Email < b.Email
	})
}
