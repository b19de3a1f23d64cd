// Package apperr provides structured application errors with a
// machine-readable code that maps onto an HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeValidation marks a missing or malformed request field.
	CodeValidation Code = "VALIDATION"

	// CodeUnauthorized marks missing or invalid credentials or sessions.
	CodeUnauthorized Code = "UNAUTHORIZED"

	// CodeNotFound marks a resource the caller does not own or that
	// does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeConflict marks an attempt to create a resource that already
	// exists, such as a duplicate registration email.
	CodeConflict Code = "CONFLICT"

	// CodeInternal marks an infrastructure failure (storage unavailable,
	// unexpected query error).
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus returns the HTTP status code for this error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is the application error type.
type Error struct {
	Code    Code   // machine-readable code
	Message string // user-facing message, rendered in the JSON error body
	Cause   error  // wrapped underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an application error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an application error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the error code from err, or CodeInternal if err carries
// no application error.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}
