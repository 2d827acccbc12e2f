package errors

import (
	"net/http"
)

// ValidationError carries the machine-readable code raised by entity
// constructors (e.g. "NEW_COMMENT.CANNOT_BE_EMPTY_STRING"). The handler
// layer runs it through Translate before writing the response.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

func NewValidation(code string) *ValidationError {
	return &ValidationError{Code: code}
}

// InvariantError is a client error with a user-facing message.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

func (e *InvariantError) StatusCode() int {
	return http.StatusBadRequest
}

// NotFoundError is raised when a referenced resource does not exist.
// Soft-deleted rows count as absent on every write path.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// AuthorizationError is raised when the acting user does not own the
// resource they try to mutate.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func (e *AuthorizationError) StatusCode() int {
	return http.StatusForbidden
}

// AuthenticationError is raised on bad credentials or tokens.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) StatusCode() int {
	return http.StatusUnauthorized
}

type statusCoder interface {
	StatusCode() int
}

// StatusCode maps an error to its HTTP status. Anything outside the
// taxonomy is an internal error and must stay opaque to the client.
func StatusCode(err error) int {
	if e, ok := err.(statusCoder); ok {
		return e.StatusCode()
	}
	return http.StatusInternalServerError
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	_, ok := err.(T)
	return ok
}
