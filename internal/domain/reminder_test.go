package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPracticeReminder(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	at := time.Date(0, 1, 1, 19, 30, 0, 0, time.UTC)

	reminder, err := NewPracticeReminder(at, []time.Weekday{time.Monday, time.Thursday}, now)
	require.NoError(t, err)

	assert.True(t, reminder.Enabled)
	assert.Equal(t, at, reminder.Time)
	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, reminder.Days)
	assert.Equal(t, now, reminder.CreatedAt)
}

func TestNewPracticeReminder_RequiresDays(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	_, err := NewPracticeReminder(now, nil, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoReminderDays)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPracticeReminder_Mutations(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	reminder, err := NewPracticeReminder(now, []time.Weekday{time.Sunday}, now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	reminder.ToggleEnabled(later)
	assert.False(t, reminder.Enabled)
	assert.Equal(t, later, reminder.UpdatedAt)
	reminder.ToggleEnabled(later)
	assert.True(t, reminder.Enabled)

	newTime := time.Date(0, 1, 1, 7, 0, 0, 0, time.UTC)
	reminder.UpdateTime(newTime, later)
	assert.Equal(t, newTime, reminder.Time)

	require.NoError(t, reminder.UpdateDays([]time.Weekday{time.Friday}, later))
	assert.Equal(t, []time.Weekday{time.Friday}, reminder.Days)

	assert.ErrorIs(t, reminder.UpdateDays(nil, later), ErrNoReminderDays)
}
