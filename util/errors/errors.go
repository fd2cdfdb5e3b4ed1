// errors shared by the layers of the course details server. Callers map them to user visible outcomes
package errors

import "fmt"

// a required argument is missing or malformed. This is a programming error of the caller, not a condition a user can
// recover from
type ErrInvalidArgument struct {
	Message string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

// the referenced entity does not exist
type ErrEntityNotFound struct {
	Entity string
	ID     string
}

func (e *ErrEntityNotFound) Error() string {
	return fmt.Sprintf("%s \"%s\" does not exist", e.Entity, e.ID)
}

// the actor is not allowed to access the resource
type ErrAccessDenied struct {
	User     string
	Resource string
	Message  string
}

func (e *ErrAccessDenied) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("user \"%s\" is not allowed to access %s", e.User, e.Resource)
	}
	return fmt.Sprintf("user \"%s\" is not allowed to access %s: %s", e.User, e.Resource, e.Message)
}

// the data given for creating or updating an entity is incomplete or invalid
type ErrInsufficientData struct {
	Message string
}

func (e *ErrInsufficientData) Error() string {
	return e.Message
}
