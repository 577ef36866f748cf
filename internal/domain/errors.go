package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity fails validation. The journal
	// is left unchanged whenever an operation returns it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat is returned when a date, time or icon string is not in
	// the expected format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound is returned when an entity referenced by ID does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoBabySelected is returned by operations scoped to the selected baby
	// when the journal holds no babies yet.
	ErrNoBabySelected = errors.New("no baby selected")
)

// ValidationError describes which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Err, e.Field, e.Message)
}

// Unwrap returns the sentinel error so errors.Is works against ErrValidation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
