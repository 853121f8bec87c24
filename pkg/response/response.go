package response

import (
	"errors"
)

// Error pairs an HTTP status with the stable application error code exposed
// on the wire. The code, not the message, is the contract.
type Error struct {
	Status int
	Code   int
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Status == t.Status
}

func NewError(status int, code int, err string) error {
	return &Error{status, code, errors.New(err)}
}
