package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// SubmitReview records one review of a phrase with a learner-reported
// quality score (0 worst to 5 best). It runs the scheduler and the
// quality-derived mastery mapping off the same score — the two are
// independent, neither feeds the other — then bumps the recently-practiced
// list, the per-day practice counter, and the active session's count.
//
// An out-of-range score is rejected before any state changes. The updated
// record is returned.
func (e *Engine) SubmitReview(ctx context.Context, id uuid.UUID, quality int, now time.Time) (domain.PhraseRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return domain.PhraseRecord{}, ErrPhraseNotFound
	}

	next, err := e.scheduler.Review(rec.Review, quality, now)
	if err != nil {
		return domain.PhraseRecord{}, err
	}

	rec.Review = next
	rec.Mastery = domain.MasteryFromQuality(quality)
	rec.UpdatedAt = now

	e.bumpRecent(id)
	e.daily = e.daily.Increment(now)
	if e.session != nil {
		e.session.practiced++
	}

	e.logger.Debug("review recorded",
		slog.String("phrase_id", id.String()),
		slog.Int("quality", quality),
		slog.Float64("interval_days", next.IntervalDays),
		slog.Int("repetitions", next.Repetitions))

	if err := e.saveRecords(ctx); err != nil {
		return *rec, err
	}
	if err := e.saveRecent(ctx); err != nil {
		return *rec, err
	}
	if err := e.gw.SaveDailyProgress(ctx, e.daily); err != nil {
		e.logger.Warn("failed to persist daily progress", slog.Any("error", err))
		return *rec, err
	}

	return *rec, nil
}

// IsDue reports whether the phrase's scheduled review date has arrived. A
// phrase that has never been reviewed is always due.
func (e *Engine) IsDue(id uuid.UUID, now time.Time) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return false, ErrPhraseNotFound
	}
	return e.scheduler.IsDue(rec.Review, now), nil
}

// DaysUntilReview returns the whole days until the phrase's next scheduled
// review, floored at zero.
func (e *Engine) DaysUntilReview(id uuid.UUID, now time.Time) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return 0, ErrPhraseNotFound
	}
	return e.scheduler.DaysUntilDue(rec.Review, now), nil
}

// DueForReview returns the records whose review date has arrived, in
// insertion order.
func (e *Engine) DueForReview(now time.Time) []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var due []domain.PhraseRecord
	for _, id := range e.order {
		rec := e.records[id]
		if e.scheduler.IsDue(rec.Review, now) {
			due = append(due, *rec)
		}
	}
	return due
}

// DueCount returns the number of phrases currently due for review.
func (e *Engine) DueCount(now time.Time) int {
	return len(e.DueForReview(now))
}

// bumpRecent moves the phrase to the front of the recently-practiced list,
// deduplicating and trimming to the cap.
func (e *Engine) bumpRecent(id uuid.UUID) {
	e.dropRecent(id)
	e.recent = append([]uuid.UUID{id}, e.recent...)
	if len(e.recent) > recentLimit {
		e.recent = e.recent[:recentLimit]
	}
}

// dropRecent removes the phrase from the recently-practiced list, reporting
// whether it was present.
func (e *Engine) dropRecent(id uuid.UUID) bool {
	for i, rid := range e.recent {
		if rid == id {
			e.recent = append(e.recent[:i], e.recent[i+1:]...)
			return true
		}
	}
	return false
}

// saveRecent writes the recently-practiced list through the gateway.
func (e *Engine) saveRecent(ctx context.Context) error {
	if err := e.gw.SaveRecentlyPracticed(ctx, e.recent); err != nil {
		e.logger.Warn("failed to persist recently practiced", slog.Any("error", err))
		return err
	}
	return nil
}

// RecentlyPracticed returns the most recently reviewed phrases, newest
// first, capped at ten.
func (e *Engine) RecentlyPracticed() []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.PhraseRecord, 0, len(e.recent))
	for _, id := range e.recent {
		if rec, ok := e.records[id]; ok {
			out = append(out, *rec)
		}
	}
	return out
}
