// Package apperrors defines the domain error taxonomy surfaced to API
// clients: validation, not-found, conflict and expired-project failures.
// Anything outside this taxonomy is treated as a server error.
package apperrors

import "fmt"

// ValidationError reports malformed or out-of-range input. It is raised
// before any storage write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity id or name does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFoundf builds a NotFoundError with a formatted message.
func NotFoundf(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate email
// or category name.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Conflictf builds a ConflictError with a formatted message.
func Conflictf(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ExpiredError reports an investment attempted after the project deadline.
type ExpiredError struct {
	Message string
}

func (e *ExpiredError) Error() string { return e.Message }

// Expiredf builds an ExpiredError with a formatted message.
func Expiredf(format string, args ...interface{}) *ExpiredError {
	return &ExpiredError{Message: fmt.Sprintf(format, args...)}
}
