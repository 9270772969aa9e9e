package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// RecordPracticeDay updates the consecutive-day streak for a practice on
// the given day and returns the new state. Calling it again on the same
// calendar day is a no-op, so one call per session is enough and a second
// does no harm; there is no further debouncing here.
func (e *Engine) RecordPracticeDay(ctx context.Context, today time.Time) (domain.StreakState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.streak.RecordPractice(today)
	if next == e.streak {
		return e.streak, nil
	}

	e.streak = next
	e.logger.Debug("streak updated", slog.Int("current", next.Current))

	if err := e.gw.SaveStreak(ctx, e.streak); err != nil {
		e.logger.Warn("failed to persist streak", slog.Any("error", err))
		return e.streak, err
	}
	return e.streak, nil
}

// Streak returns the current streak state.
func (e *Engine) Streak() domain.StreakState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.streak
}

// SetDailyGoal sets the daily practice target. The target must be positive.
func (e *Engine) SetDailyGoal(ctx context.Context, target int) error {
	if target <= 0 {
		return domain.NewValidationError("target", "daily goal must be positive", domain.ErrInvalidDailyTarget)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.dailyGoal = target
	if err := e.gw.SaveDailyGoal(ctx, target); err != nil {
		e.logger.Warn("failed to persist daily goal", slog.Any("error", err))
		return err
	}
	return nil
}

// DailyGoal returns the daily practice target.
func (e *Engine) DailyGoal() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.dailyGoal
}

// PracticedToday returns how many phrases were reviewed on now's calendar
// day. The counter rolls over at the same day boundary as the streak.
func (e *Engine) PracticedToday(now time.Time) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.daily.CountFor(now)
}

// DailyGoalProgress returns today's practiced count as a fraction of the
// daily target. The ratio is not capped at 1.0; display code clamps it.
func (e *Engine) DailyGoalProgress(now time.Time) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.dailyGoal <= 0 {
		return 0
	}
	return float64(e.daily.CountFor(now)) / float64(e.dailyGoal)
}
