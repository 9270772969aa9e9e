package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Phrase-record validation errors.
var (
	// ErrPhraseIDEmpty is returned when a phrase record ID is empty or nil.
	ErrPhraseIDEmpty = errors.New("phrase record ID cannot be empty")

	// ErrNegativeInterval is returned when a review interval is negative.
	ErrNegativeInterval = errors.New("review interval cannot be negative")

	// ErrEaseFactorTooLow is returned when an ease factor drops below the floor.
	ErrEaseFactorTooLow = errors.New("ease factor cannot be below 1.3")

	// ErrNegativeRepetitions is returned when a repetition count is negative.
	ErrNegativeRepetitions = errors.New("repetition count cannot be negative")
)

// Scheduling defaults for a record that has never been reviewed.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewState holds the spaced-repetition scheduling state of one phrase.
// The zero value means the phrase has never been reviewed; Unreviewed makes
// that branch explicit instead of leaving callers to probe a nullable
// timestamp.
type ReviewState struct {
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	IntervalDays   float64   `json:"interval_days"` // days until next review
	EaseFactor     float64   `json:"ease_factor"`   // growth rate, floor 1.3
	Repetitions    int       `json:"repetitions"`   // consecutive successful reviews
}

// NewReviewState returns the scheduling state for a phrase entering the
// system: never reviewed, interval 0, default ease factor, zero repetitions.
func NewReviewState() ReviewState {
	return ReviewState{
		EaseFactor: DefaultEaseFactor,
	}
}

// Unreviewed reports whether the phrase has never been reviewed.
func (r ReviewState) Unreviewed() bool {
	return r.LastReviewedAt.IsZero()
}

// Validate checks the scheduling invariants.
func (r ReviewState) Validate() error {
	if r.IntervalDays < 0 {
		return ErrNegativeInterval
	}
	if r.EaseFactor < MinEaseFactor {
		return ErrEaseFactorTooLow
	}
	if r.Repetitions < 0 {
		return ErrNegativeRepetitions
	}
	return nil
}

// PhraseRecord is the mutable learning state attached to one catalog phrase.
// The phrase text itself lives in the external catalog; the record carries
// only the attributes the engine needs for scheduling and statistics.
type PhraseRecord struct {
	ID         uuid.UUID    `json:"id"`
	Category   string       `json:"category"`
	Difficulty string       `json:"difficulty"`
	Favorite   bool         `json:"favorite"`
	Mastery    MasteryLevel `json:"mastery"`
	Review     ReviewState  `json:"review"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NewPhraseRecord creates a learning record with defaults: mastery New,
// never reviewed, interval 0, ease factor 2.5, zero repetitions.
func NewPhraseRecord(id uuid.UUID, category, difficulty string, now time.Time) (*PhraseRecord, error) {
	rec := &PhraseRecord{
		ID:         id,
		Category:   category,
		Difficulty: difficulty,
		Mastery:    MasteryNew,
		Review:     NewReviewState(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Validate checks if the PhraseRecord has valid data.
// Returns an error if any field fails validation.
func (p *PhraseRecord) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPhraseIDEmpty
	}

	if !p.Mastery.Valid() {
		return ErrInvalidMasteryLevel
	}

	return p.Review.Validate()
}

// SetMastery overrides the mastery level directly. Any level is reachable
// from any other; this is the manual "mark as" path rather than the
// quality-derived one.
func (p *PhraseRecord) SetMastery(level MasteryLevel, now time.Time) error {
	if !level.Valid() {
		return ErrInvalidMasteryLevel
	}
	p.Mastery = level
	p.UpdatedAt = now
	return nil
}
