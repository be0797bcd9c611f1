// Package apperror defines the application error taxonomy. Services return
// these; the HTTP layer maps them to status codes and hides internal detail.
package apperror

import (
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// StoreError represents a persistence layer failure.
	StoreError ErrorType = iota
	// ValidationError represents malformed or missing input.
	ValidationError
	// UnauthenticatedError covers missing/invalid tokens and bad credentials.
	UnauthenticatedError
	// ConflictError represents a uniqueness conflict, e.g. a taken username.
	ConflictError
)

// AppError carries an error category, a caller-safe message, and an
// optional underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case UnauthenticatedError:
		return http.StatusUnauthorized
	case ConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewStoreError creates an AppError for a persistence failure.
func NewStoreError(message string, err error) *AppError {
	return &AppError{Type: StoreError, Message: message, Err: err}
}

// NewValidationError creates an AppError for invalid input.
func NewValidationError(message string) *AppError {
	return &AppError{Type: ValidationError, Message: message}
}

// NewUnauthenticatedError creates an AppError for authentication failures.
func NewUnauthenticatedError(message string, err error) *AppError {
	return &AppError{Type: UnauthenticatedError, Message: message, Err: err}
}

// NewConflictError creates an AppError for uniqueness conflicts.
func NewConflictError(message string) *AppError {
	return &AppError{Type: ConflictError, Message: message}
}
