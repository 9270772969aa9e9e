package domain

import (
	"time"

	"github.com/google/uuid"
)

// PracticeReminder schedules a recurring practice notification. The engine
// only stores and mutates reminders; delivering notifications is the
// presentation layer's job.
type PracticeReminder struct {
	ID        uuid.UUID      `json:"id"`
	Time      time.Time      `json:"time"` // clock time of day, date part ignored
	Days      []time.Weekday `json:"days"`
	Enabled   bool           `json:"enabled"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewPracticeReminder creates an enabled reminder for the given clock time
// and weekdays.
func NewPracticeReminder(at time.Time, days []time.Weekday, now time.Time) (*PracticeReminder, error) {
	if len(days) == 0 {
		return nil, NewValidationError("days", "at least one weekday is required", ErrNoReminderDays)
	}

	return &PracticeReminder{
		ID:        uuid.New(),
		Time:      at,
		Days:      days,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ToggleEnabled flips the enabled flag and bumps UpdatedAt.
func (r *PracticeReminder) ToggleEnabled(now time.Time) {
	r.Enabled = !r.Enabled
	r.UpdatedAt = now
}

// UpdateTime changes the clock time and bumps UpdatedAt.
func (r *PracticeReminder) UpdateTime(at time.Time, now time.Time) {
	r.Time = at
	r.UpdatedAt = now
}

// UpdateDays replaces the weekday set and bumps UpdatedAt.
func (r *PracticeReminder) UpdateDays(days []time.Weekday, now time.Time) error {
	if len(days) == 0 {
		return NewValidationError("days", "at least one weekday is required", ErrNoReminderDays)
	}
	r.Days = days
	r.UpdatedAt = now
	return nil
}
