// Package apperr defines the error taxonomy shared by the query catalog and
// the HTTP layer. Every failure that should reach a client carries a Kind and
// an HTTP status; anything else is treated as an opaque store failure and
// rendered as a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for handling purposes.
type Kind int

const (
	// KindInvalid marks bad or missing request input.
	KindInvalid Kind = iota
	// KindNotFound marks a lookup that matched no entity.
	KindNotFound
	// KindUnauthorized marks a protected operation without a valid identity.
	KindUnauthorized
	// KindConflict marks a uniqueness violation (e.g. username taken).
	KindConflict
	// KindStore marks an opaque failure from the graph engine.
	KindStore
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is a tagged error carrying a kind and an HTTP status code.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid builds a 400-class validation error.
func Invalid(format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalid,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound builds a 404 error for a missing entity.
func NotFound(format string, args ...any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unauthorized builds a 401 error.
func Unauthorized(message string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

// Conflict builds a 409 error.
func Conflict(format string, args ...any) *Error {
	return &Error{
		Kind:    KindConflict,
		Status:  http.StatusConflict,
		Message: fmt.Sprintf(format, args...),
	}
}

// Store wraps an opaque graph engine failure. The underlying message is kept
// for logs but never rendered to clients.
func Store(op string, err error) *Error {
	return &Error{
		Kind:   KindStore,
		Status: http.StatusInternalServerError,
		Err:    fmt.Errorf("%s: %w", op, err),
	}
}

// From extracts a tagged error from err, or nil when err carries no tag.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// StatusOf returns the HTTP status for err, defaulting to 500.
func StatusOf(err error) int {
	if e := From(err); e != nil {
		return e.Status
	}
	return http.StatusInternalServerError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	e := From(err)
	return e != nil && e.Kind == kind
}
