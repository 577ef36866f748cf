package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a profile with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnauthorized is returned when credentials or a session token are
	// rejected, or when no caregiver is signed in.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	ErrProfileNotFound    = fmt.Errorf("%w: profile", ErrNotFound)
	ErrSettingsNotFound   = fmt.Errorf("%w: settings", ErrNotFound)
	ErrBabyNotFound       = fmt.Errorf("%w: baby", ErrNotFound)
	ErrActivityNotFound   = fmt.Errorf("%w: activity", ErrNotFound)
	ErrGrowthNotFound     = fmt.Errorf("%w: growth record", ErrNotFound)
	ErrCustomTypeNotFound = fmt.Errorf("%w: custom activity type", ErrNotFound)

	// ErrEmailExists is returned on sign-up or profile update when another
	// profile already uses the email.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a store failure with enough context to show the caregiver a
// readable message.
type StoreError struct {
	Entity    string // The entity type (e.g., "baby", "activity")
	Operation string // The operation that failed (e.g., "create", "list")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
