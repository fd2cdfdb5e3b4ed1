package users

import "fmt"

// ErrAuthenticationFailure is returned for unknown users and wrong passwords alike.
type ErrAuthenticationFailure struct {
	User    string
	Message string
}

func (e *ErrAuthenticationFailure) Error() string {
	return fmt.Sprintf("authentication of %q failed: %s", e.User, e.Message)
}
