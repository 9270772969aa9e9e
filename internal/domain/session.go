package domain

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession is an immutable summary of one completed practice session.
// MasteryLevels snapshots the distribution across the entire phrase set at
// session end, not just the phrases touched during the session.
type PracticeSession struct {
	ID               uuid.UUID            `json:"id"`
	Date             time.Time            `json:"date"` // session start
	PhrasesPracticed int                  `json:"phrases_practiced"`
	Duration         float64              `json:"duration"` // seconds
	MasteryLevels    map[MasteryLevel]int `json:"mastery_levels"`
}

// NewPracticeSession builds the summary entry for a session that started at
// start and ended at end.
func NewPracticeSession(start, end time.Time, practiced int, masteryLevels map[MasteryLevel]int) PracticeSession {
	return PracticeSession{
		ID:               uuid.New(),
		Date:             start,
		PhrasesPracticed: practiced,
		Duration:         end.Sub(start).Seconds(),
		MasteryLevels:    masteryLevels,
	}
}
