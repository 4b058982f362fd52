package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a story, tag, run, or proposal lookup
	// comes up empty
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when a create collides with an
	// existing row (duplicate tag slug, second summary for a story)
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation or a state
	// transition check fails (e.g. executing a proposal that is not approved)
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
