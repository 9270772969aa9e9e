// Package domain defines the core learning-progress entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuality is returned when a review quality score is outside [0,5].
	ErrInvalidQuality = errors.New("quality score must be between 0 and 5")

	// ErrInvalidMasteryLevel is returned when a mastery level is not one of
	// New, Learning or Mastered.
	ErrInvalidMasteryLevel = errors.New("invalid mastery level")

	// ErrInvalidGoalTarget is returned when a learning goal target is not positive.
	ErrInvalidGoalTarget = errors.New("goal target must be positive")

	// ErrEmptyGoalName is returned when a learning goal name is empty.
	ErrEmptyGoalName = errors.New("goal name cannot be empty")

	// ErrEmptyCollectionName is returned when a collection name is empty.
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")

	// ErrInvalidDailyTarget is returned when a daily goal target is not positive.
	ErrInvalidDailyTarget = errors.New("daily goal target must be positive")

	// ErrNoReminderDays is returned when a practice reminder has no weekdays set.
	ErrNoReminderDays = errors.New("reminder must cover at least one weekday")
)

// ValidationError carries the field that failed validation alongside the
// underlying sentinel error, so callers can both render a message and check
// the cause with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation of %s failed: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation of %s failed: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given cause.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
