package entities

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("you don't have permission to do that")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrDuplicateUser      = errors.New("a user with the given username or email is already registered")
	ErrInvalidResetToken  = errors.New("password reset token is invalid or has expired")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrSelfFollow         = errors.New("you cannot follow yourself")
	ErrRateLimited        = errors.New("too many requests, please try again later")
)

// ValidationError reports input that failed entity validation. Its message is safe to
// show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
