package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all gateway implementations.
var (
	// ErrNotFound is returned when a requested entity or state section does
	// not exist in the store. This is the generic version of the
	// section-specific not found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable is returned when the underlying storage cannot be
	// reached. The engine's in-memory state stays authoritative when this
	// happens; the mutation is kept and only its durability is lost.
	ErrUnavailable = errors.New("persistence unavailable")

	// ErrInvalidDocument is returned when an export document cannot be
	// decoded.
	ErrInvalidDocument = errors.New("invalid export document")

	// Section-specific "not found" errors.

	// ErrRecordsNotFound indicates no phrase records have been saved yet.
	ErrRecordsNotFound = fmt.Errorf("%w: phrase records", ErrNotFound)

	// ErrStreakNotFound indicates no streak state has been saved yet.
	ErrStreakNotFound = fmt.Errorf("%w: streak state", ErrNotFound)

	// ErrDailyGoalNotFound indicates no daily goal target has been saved yet.
	ErrDailyGoalNotFound = fmt.Errorf("%w: daily goal", ErrNotFound)

	// ErrDailyProgressNotFound indicates no daily progress has been saved yet.
	ErrDailyProgressNotFound = fmt.Errorf("%w: daily progress", ErrNotFound)

	// ErrGoalsNotFound indicates no learning goals have been saved yet.
	ErrGoalsNotFound = fmt.Errorf("%w: learning goals", ErrNotFound)

	// ErrCollectionsNotFound indicates no collections have been saved yet.
	ErrCollectionsNotFound = fmt.Errorf("%w: collections", ErrNotFound)

	// ErrRemindersNotFound indicates no reminders have been saved yet.
	ErrRemindersNotFound = fmt.Errorf("%w: reminders", ErrNotFound)

	// ErrSessionsNotFound indicates no session history has been saved yet.
	ErrSessionsNotFound = fmt.Errorf("%w: session history", ErrNotFound)

	// ErrRecentNotFound indicates no recently-practiced list has been saved yet.
	ErrRecentNotFound = fmt.Errorf("%w: recently practiced", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Engines treat these as "start from defaults", not as failures.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// GatewayError is a custom error type for gateway failures with context
// about which section and operation failed.
type GatewayError struct {
	Section   string // state section (e.g. "records", "streak")
	Operation string // the operation that failed (e.g. "load", "save")
	Err       error  // original error
}

// Error implements the error interface for GatewayError.
func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s of %s failed: %v", e.Operation, e.Section, e.Err)
	}
	return fmt.Sprintf("%s of %s failed", e.Operation, e.Section)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewGatewayError creates a new GatewayError wrapping the given cause.
func NewGatewayError(section, operation string, err error) *GatewayError {
	return &GatewayError{
		Section:   section,
		Operation: operation,
		Err:       err,
	}
}
