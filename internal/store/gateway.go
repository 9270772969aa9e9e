// Package store defines the persistence gateway the learning engine writes
// through, plus an in-memory implementation for tests and ephemeral use.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// Gateway is the key-value persistence contract injected into the engine.
// Each state section loads and saves independently; Load methods return a
// section-specific not-found error (checkable with IsNotFoundError) when the
// section has never been written, and the engine falls back to defaults.
//
// The engine sequences all calls itself; implementations do not need to
// coordinate concurrent writers beyond last-writer-wins.
type Gateway interface {
	// LoadRecords returns all saved phrase learning records.
	LoadRecords(ctx context.Context) ([]domain.PhraseRecord, error)

	// SaveRecords replaces the saved phrase learning records.
	SaveRecords(ctx context.Context, records []domain.PhraseRecord) error

	// LoadStreak returns the saved streak state.
	LoadStreak(ctx context.Context) (domain.StreakState, error)

	// SaveStreak replaces the saved streak state.
	SaveStreak(ctx context.Context, streak domain.StreakState) error

	// LoadDailyGoal returns the saved daily goal target.
	LoadDailyGoal(ctx context.Context) (int, error)

	// SaveDailyGoal replaces the saved daily goal target.
	SaveDailyGoal(ctx context.Context, target int) error

	// LoadDailyProgress returns the saved per-day practice counter.
	LoadDailyProgress(ctx context.Context) (domain.DailyProgress, error)

	// SaveDailyProgress replaces the saved per-day practice counter.
	SaveDailyProgress(ctx context.Context, progress domain.DailyProgress) error

	// LoadGoals returns all saved learning goals.
	LoadGoals(ctx context.Context) ([]domain.LearningGoal, error)

	// SaveGoals replaces the saved learning goals.
	SaveGoals(ctx context.Context, goals []domain.LearningGoal) error

	// LoadCollections returns all saved phrase collections.
	LoadCollections(ctx context.Context) ([]domain.PhraseCollection, error)

	// SaveCollections replaces the saved phrase collections.
	SaveCollections(ctx context.Context, collections []domain.PhraseCollection) error

	// LoadReminders returns all saved practice reminders.
	LoadReminders(ctx context.Context) ([]domain.PracticeReminder, error)

	// SaveReminders replaces the saved practice reminders.
	SaveReminders(ctx context.Context, reminders []domain.PracticeReminder) error

	// LoadSessions returns the saved session history, oldest first.
	LoadSessions(ctx context.Context) ([]domain.PracticeSession, error)

	// AppendSession appends one completed session to the history.
	AppendSession(ctx context.Context, session domain.PracticeSession) error

	// SaveSessions replaces the whole session history. Used when importing
	// an exported document; the normal write path is AppendSession.
	SaveSessions(ctx context.Context, sessions []domain.PracticeSession) error

	// LoadRecentlyPracticed returns the saved recently-practiced phrase ids,
	// most recent first.
	LoadRecentlyPracticed(ctx context.Context) ([]uuid.UUID, error)

	// SaveRecentlyPracticed replaces the saved recently-practiced phrase ids.
	SaveRecentlyPracticed(ctx context.Context, ids []uuid.UUID) error

	// Close releases any resources held by the gateway.
	Close() error
}
