package srs

import (
	"time"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// Service defines the interface for spaced-repetition scheduling operations.
type Service interface {
	// Review computes the scheduling state after a review with the given
	// quality score. Scores outside the configured range are rejected with
	// a validation error and the input state is returned unchanged; they
	// are never clamped.
	Review(state domain.ReviewState, quality int, now time.Time) (domain.ReviewState, error)

	// IsDue reports whether a phrase with the given state should be shown
	// at the given instant.
	IsDue(state domain.ReviewState, now time.Time) bool

	// DaysUntilDue returns the whole days until the next scheduled review,
	// floored at zero.
	DaysUntilDue(state domain.ReviewState, now time.Time) int
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduler with default SM-2 parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a scheduler with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// Review implements the Service interface.
func (s *defaultService) Review(state domain.ReviewState, quality int, now time.Time) (domain.ReviewState, error) {
	if quality < s.params.MinQuality || quality > s.params.MaxQuality {
		return state, domain.NewValidationError(
			"quality",
			"score is out of range",
			domain.ErrInvalidQuality,
		)
	}

	return calculateNextState(state, quality, now, s.params), nil
}

// IsDue implements the Service interface.
func (s *defaultService) IsDue(state domain.ReviewState, now time.Time) bool {
	return isDue(state, now)
}

// DaysUntilDue implements the Service interface.
func (s *defaultService) DaysUntilDue(state domain.ReviewState, now time.Time) int {
	return daysUntilDue(state, now)
}
