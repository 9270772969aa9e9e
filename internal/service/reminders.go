package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// AddReminder creates an enabled practice reminder for the given clock time
// and weekdays.
func (e *Engine) AddReminder(ctx context.Context, at time.Time, days []time.Weekday) (domain.PracticeReminder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reminder, err := domain.NewPracticeReminder(at, days, e.nowFn())
	if err != nil {
		return domain.PracticeReminder{}, err
	}

	e.reminders = append(e.reminders, *reminder)
	return *reminder, e.saveReminders(ctx)
}

// ToggleReminder flips a reminder's enabled flag and returns the new value.
func (e *Engine) ToggleReminder(ctx context.Context, id uuid.UUID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reminder := e.findReminder(id)
	if reminder == nil {
		return false, ErrReminderNotFound
	}

	reminder.ToggleEnabled(e.nowFn())
	return reminder.Enabled, e.saveReminders(ctx)
}

// UpdateReminderTime changes a reminder's clock time.
func (e *Engine) UpdateReminderTime(ctx context.Context, id uuid.UUID, at time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	reminder := e.findReminder(id)
	if reminder == nil {
		return ErrReminderNotFound
	}

	reminder.UpdateTime(at, e.nowFn())
	return e.saveReminders(ctx)
}

// UpdateReminderDays replaces a reminder's weekday set.
func (e *Engine) UpdateReminderDays(ctx context.Context, id uuid.UUID, days []time.Weekday) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	reminder := e.findReminder(id)
	if reminder == nil {
		return ErrReminderNotFound
	}

	if err := reminder.UpdateDays(days, e.nowFn()); err != nil {
		return err
	}
	return e.saveReminders(ctx)
}

// DeleteReminder removes a reminder.
func (e *Engine) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.reminders {
		if e.reminders[i].ID == id {
			e.reminders = append(e.reminders[:i], e.reminders[i+1:]...)
			return e.saveReminders(ctx)
		}
	}
	return ErrReminderNotFound
}

// Reminders returns all reminders in creation order.
func (e *Engine) Reminders() []domain.PracticeReminder {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.PracticeReminder, len(e.reminders))
	copy(out, e.reminders)
	return out
}

func (e *Engine) findReminder(id uuid.UUID) *domain.PracticeReminder {
	for i := range e.reminders {
		if e.reminders[i].ID == id {
			return &e.reminders[i]
		}
	}
	return nil
}

func (e *Engine) saveReminders(ctx context.Context) error {
	if err := e.gw.SaveReminders(ctx, e.reminders); err != nil {
		e.logger.Warn("failed to persist reminders", slog.Any("error", err))
		return err
	}
	return nil
}
