// validation of element data using struct tags
package validation

import (
	"fmt"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/go-playground/validator/v10"
	"regexp"
	"strings"
)

const courseIdTag = "courseid"

var courseIdRegex = regexp.MustCompile(`^[A-Za-z0-9_.$-]{1,40}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(courseIdTag, func(fl validator.FieldLevel) bool {
		return IsValidCourseId(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// returns true if the given string may be used as a course id. Course ids never contain the db key separator
func IsValidCourseId(courseId string) bool {
	return courseIdRegex.MatchString(courseId)
}

// validate the given struct according to its "validate" tags. Failures are returned as ErrInsufficientData holding a
// message per invalid field
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var messages []string
	for _, fieldErr := range validationErrors {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return &courseerr.ErrInsufficientData{Message: strings.Join(messages, "; ")}
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case courseIdTag:
		return fmt.Sprintf("%s may only contain letters, digits and the characters _.$- (up to 40 characters)", field)
	default:
		return fmt.Sprintf("%s: %s", field, fieldErr.Tag())
	}
}
