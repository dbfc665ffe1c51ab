package webgenius

import (
	"errors"
	"fmt"
)

// Application error codes. These map a failure to a category the
// caller can act on without inspecting the message.
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // remote resource could not be fetched
	EINTERNAL    = "internal"    // internal error
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webgenius error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, if it is an application
// error. Returns EINTERNAL for non-application errors and an empty
// string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an error, if it is an
// application error. Returns a generic message for non-application
// errors and an empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
