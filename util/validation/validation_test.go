package validation

import (
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"strings"
	"testing"
)

type validated struct {
	CourseID string `validate:"required,courseid"`
	Email    string `validate:"required,email"`
	Role     string `validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	if err := Struct(&validated{CourseID: "CS101-2021.s$_", Email: "a@x.com", Role: "a"}); err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	err := Struct(&validated{CourseID: "CS:101", Email: "not an email", Role: "c"})
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
	insufficientData, ok := err.(*courseerr.ErrInsufficientData)
	if !ok {
		t.Fatalf("expected ErrInsufficientData but got %T", err)
	}
	for _, field := range []string{"courseid", "email", "role"} {
		if !strings.Contains(insufficientData.Message, field) {
			t.Fatalf("expected \"%s\" to mention %s", insufficientData.Message, field)
		}
	}
}

func TestIsValidCourseId(t *testing.T) {
	for _, valid := range []string{"CS101", "cs.101", "a$b_c-d", strings.Repeat("a", 40)} {
		if !IsValidCourseId(valid) {
			t.Fatalf("expected \"%s\" to be a valid course id", valid)
		}
	}
	for _, invalid := range []string{"", "CS 101", "CS:101", "CS/101", strings.Repeat("a", 41)} {
		if IsValidCourseId(invalid) {
			t.Fatalf("expected \"%s\" to be an invalid course id", invalid)
		}
	}
}
