package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	Internal Code = iota + 100000
	Validation
	NotFound
	Forbidden
	InvalidOperation
	Conflict
	Unauthenticated
)

func (c Code) String() string {
	switch c {
	case Validation:
		return "validation_error"
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case InvalidOperation:
		return "invalid_operation"
	case Conflict:
		return "conflict"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// HTTPStatus is the status a handler answers with when an error of this code
// reaches the HTTP edge.
func (c Code) HTTPStatus() int {
	switch c {
	case Validation, InvalidOperation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error type returned by every service operation.
type Error struct {
	Code    Code
	Message string
	// Fields holds per-field messages for Validation errors.
	Fields map[string]string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(code Code, format string, a ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Wrap reports a storage or infrastructure failure as Internal while keeping
// the cause reachable through errors.Is and errors.As.
func Wrap(err error, format string, a ...any) *Error {
	return &Error{Code: Internal, Message: fmt.Sprintf(format, a...), cause: err}
}

func NewValidation(fields map[string]string) *Error {
	return &Error{Code: Validation, Message: "validation failed", Fields: fields}
}

// CodeOf returns the code carried by err, or Internal for foreign errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
