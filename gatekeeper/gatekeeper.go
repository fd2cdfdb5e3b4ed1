// access control decisions for course resources
package gatekeeper

import (
	"fmt"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{"component": "gatekeeper"})

type GateKeeper struct{}

func New() *GateKeeper {
	return &GateKeeper{}
}

// verify that the given instructor may access the given course. Archived instructors keep their access
func (g *GateKeeper) VerifyAccessible(instructor *instructors.Instructor, course *courses.Course) error {
	if course == nil {
		return &courseerr.ErrAccessDenied{User: userNameOf(instructor), Resource: "course", Message: "course is not given"}
	}
	resource := fmt.Sprintf("course \"%s\"", course.ID)
	if instructor == nil {
		logger.Debugf("denying access to %s: no instructor given", resource)
		return &courseerr.ErrAccessDenied{Resource: resource, Message: "not an instructor of the course"}
	}
	if instructor.CourseID != course.ID {
		logger.Debugf("denying access to %s: instructor belongs to course \"%s\"", resource, instructor.CourseID)
		return &courseerr.ErrAccessDenied{User: instructor.UserName, Resource: resource, Message: "not an instructor of the course"}
	}
	return nil
}

func userNameOf(instructor *instructors.Instructor) string {
	if instructor == nil {
		return ""
	}
	return instructor.UserName
}
