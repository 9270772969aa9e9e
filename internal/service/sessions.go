package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// StartSession begins a practice session at the given instant. Starting
// while a session is already active restarts it, discarding the in-flight
// counts.
func (e *Engine) StartSession(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = &activeSession{start: now}
}

// SessionActive reports whether a practice session is in flight.
func (e *Engine) SessionActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session != nil
}

// EndSession closes the active session and appends its summary to the
// history. The mastery-level snapshot covers the entire phrase set at this
// instant, not just the phrases touched during the session. Ending with no
// active session is a caller error.
func (e *Engine) EndSession(ctx context.Context, now time.Time) (domain.PracticeSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return domain.PracticeSession{}, ErrNoActiveSession
	}

	session := domain.NewPracticeSession(
		e.session.start,
		now,
		e.session.practiced,
		e.masterySnapshot(),
	)

	e.sessions = append(e.sessions, session)
	e.session = nil

	e.logger.Debug("practice session ended",
		slog.Int("phrases_practiced", session.PhrasesPracticed),
		slog.Float64("duration_seconds", session.Duration))

	if err := e.gw.AppendSession(ctx, session); err != nil {
		e.logger.Warn("failed to persist practice session", slog.Any("error", err))
		return session, err
	}
	return session, nil
}

// History returns the completed sessions, oldest first.
func (e *Engine) History() []domain.PracticeSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.PracticeSession, len(e.sessions))
	copy(out, e.sessions)
	return out
}

// masterySnapshot counts records per mastery level across the whole set.
// Callers must hold the engine lock.
func (e *Engine) masterySnapshot() map[domain.MasteryLevel]int {
	counts := map[domain.MasteryLevel]int{
		domain.MasteryNew:      0,
		domain.MasteryLearning: 0,
		domain.MasteryMastered: 0,
	}
	for _, rec := range e.records {
		counts[rec.Mastery]++
	}
	return counts
}
