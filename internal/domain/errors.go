package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that carry their own HTTP status code.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - match with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrMalformedID  = errors.New("malformatted id")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Token codec failures
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Messages surfaced to clients by the identity pipeline.
const (
	MsgTokenMissing       = "token missing"
	MsgTokenInvalid       = "token invalid"
	MsgTokenExpired       = "token expired"
	MsgUserNotFound       = "user not found"
	MsgInvalidCredentials = "invalid username or password"
	MsgDeleteForbidden    = "only the creator can delete this resource"
	MsgUpdateForbidden    = "only the creator can update this resource"
)

// Domain error types implementing HTTPError interface
type (
	// ValidationError indicates a field constraint was violated.
	// Message is shown to the client verbatim.
	ValidationError struct {
		Message string
	}

	// UniquenessError indicates a duplicate value for a unique field
	UniquenessError struct {
		Field string
	}

	// UnauthorizedError indicates the caller has no usable identity
	UnauthorizedError struct {
		Message string
		Err     error
	}

	// ForbiddenError indicates the caller is not allowed to touch the resource
	ForbiddenError struct {
		Message string
	}
)

// Error implementations
func (e *ValidationError) Error() string { return e.Message }
func (e *UniquenessError) Error() string {
	return fmt.Sprintf("expected `%s` to be unique", e.Field)
}
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UniquenessError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }

// Is implementations so callers can keep using the sentinels
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UniquenessError) Is(target error) bool   { return target == ErrConflict }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool    { return target == ErrForbidden }

// Unwrap exposes the codec error behind an authentication failure
func (e *UnauthorizedError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError from any validator output
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Message: err.Error()}
}

// Unauthorized builds an UnauthorizedError with the given client message
func Unauthorized(message string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Err: cause}
}
