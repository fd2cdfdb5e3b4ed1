package gatekeeper

import (
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"testing"
)

func TestVerifyAccessible(t *testing.T) {
	course := &courses.Course{ID: "CS101"}
	testCases := []struct {
		name       string
		instructor *instructors.Instructor
		course     *courses.Course
		allowed    bool
	}{
		{"instructor of the course", &instructors.Instructor{CourseID: "CS101", UserName: "osnat"}, course, true},
		{"archived instructor of the course", &instructors.Instructor{CourseID: "CS101", UserName: "osnat", IsArchived: true}, course, true},
		{"instructor of another course", &instructors.Instructor{CourseID: "CS102", UserName: "osnat"}, course, false},
		{"no instructor", nil, course, false},
		{"no course", &instructors.Instructor{CourseID: "CS101", UserName: "osnat"}, nil, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := New().VerifyAccessible(testCase.instructor, testCase.course)
			if testCase.allowed && err != nil {
				t.Fatalf("expected access to be allowed but got %v", err)
			}
			if !testCase.allowed {
				if _, ok := err.(*courseerr.ErrAccessDenied); !ok {
					t.Fatalf("expected ErrAccessDenied but got %v", err)
				}
			}
		})
	}
}
