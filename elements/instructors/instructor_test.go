package instructors

import (
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"testing"
)

func getDbForInstructorsTest() func() {
	cleanup := db.InitDbForTest()
	for _, id := range []string{"CS1", "CS10"} {
		if _, err := courses.NewCourse(id, id, "", db.System, true); err != nil {
			cleanup()
			panic(err)
		}
	}
	return cleanup
}

func TestNewInstructor(t *testing.T) {
	cleanup := getDbForInstructorsTest()
	defer cleanup()
	instructor, err := NewInstructor(&Instructor{CourseID: "CS1", UserName: "osnat", Name: "Osnat", Email: "osnat@x.com"}, db.System, true)
	if err != nil {
		t.Fatal(err)
	}
	if instructor.Role != CoOwner {
		t.Fatalf("expected default role %s but got %s", CoOwner, instructor.Role)
	}
	if _, err := NewInstructor(&Instructor{CourseID: "CS1", Name: "Osnat", Email: "OSNAT@x.com"}, db.System, true); err == nil {
		t.Fatal("expected an error when adding an instructor with an existing email")
	}
	if _, err := NewInstructor(&Instructor{CourseID: "CS999", Name: "Osnat", Email: "osnat@x.com"}, db.System, true); err == nil {
		t.Fatal("expected an error when adding an instructor to a missing course")
	} else if _, ok := err.(*db.ErrKeyNotFoundInBucket); !ok {
		t.Fatalf("expected ErrKeyNotFoundInBucket but got %v", err)
	}
	if _, err := NewInstructor(&Instructor{CourseID: "CS1", Name: "Osnat", Email: "osnat@x.com", Role: "Boss"}, db.System, false); err == nil {
		t.Fatal("expected an error for an unknown role")
	} else if _, ok := err.(*courseerr.ErrInsufficientData); !ok {
		t.Fatalf("expected ErrInsufficientData but got %v", err)
	}
}

func TestGetForCourseAndUser(t *testing.T) {
	cleanup := getDbForInstructorsTest()
	defer cleanup()
	for _, instructor := range []*Instructor{
		{CourseID: "CS1", UserName: "b", Name: "B", Email: "b@x.com"},
		{CourseID: "CS1", UserName: "a", Name: "A", Email: "a@x.com"},
		{CourseID: "CS1", Name: "C", Email: "c@x.com"},
		{CourseID: "CS10", UserName: "d", Name: "D", Email: "d@x.com"},
	} {
		if _, err := NewInstructor(instructor, db.System, true); err != nil {
			t.Fatal(err)
		}
	}
	instructors, err := GetForCourse("CS1")
	if err != nil {
		t.Fatal(err)
	}
	if len(instructors) != 3 || instructors[0].Email != "a@x.com" || instructors[2].Email != "c@x.com" {
		t.Fatalf("unexpected instructors of CS1: %+v", instructors)
	}
	instructor, err := GetForUser("CS1", "b")
	if err != nil {
		t.Fatal(err)
	}
	if instructor == nil || instructor.Email != "b@x.com" {
		t.Fatalf("expected instructor b@x.com but got %+v", instructor)
	}
	for _, userName := range []string{"d", ""} {
		instructor, err = GetForUser("CS1", userName)
		if err != nil {
			t.Fatal(err)
		}
		if instructor != nil {
			t.Fatalf("expected no instructor for user \"%s\" in CS1 but got %+v", userName, instructor)
		}
	}
}
