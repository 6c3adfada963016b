package domain

import (
	"errors"
	"fmt"
)

// ErrSubmissionNotFound is returned when no submission matches the given id
var ErrSubmissionNotFound = errors.New("submission not found")

// ValidationError reports a missing or malformed field at persistence time
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
