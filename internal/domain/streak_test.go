package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestStreakState_FirstPractice(t *testing.T) {
	t.Parallel()

	got := StreakState{}.RecordPractice(day(2024, 3, 1))
	assert.Equal(t, 1, got.Current)
	assert.Equal(t, day(2024, 3, 1), got.LastPracticed)
}

func TestStreakState_SameDayIsIdempotent(t *testing.T) {
	t.Parallel()

	first := StreakState{}.RecordPractice(day(2024, 3, 1))
	// A later practice on the same calendar day, at a different hour.
	second := first.RecordPractice(day(2024, 3, 1).Add(8 * time.Hour))

	assert.Equal(t, first, second)
}

func TestStreakState_ConsecutiveDaysGrow(t *testing.T) {
	t.Parallel()

	s := StreakState{}
	s = s.RecordPractice(day(2024, 3, 1))
	s = s.RecordPractice(day(2024, 3, 2))
	assert.Equal(t, 2, s.Current)

	s = s.RecordPractice(day(2024, 3, 3))
	assert.Equal(t, 3, s.Current)
}

func TestStreakState_GapResetsToOne(t *testing.T) {
	t.Parallel()

	s := StreakState{}
	s = s.RecordPractice(day(2024, 3, 1))
	s = s.RecordPractice(day(2024, 3, 2))

	// Two missed days: streak restarts at 1, not 0 and not 3.
	s = s.RecordPractice(day(2024, 3, 5))
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, day(2024, 3, 5), s.LastPracticed)
}

func TestStreakState_MonthBoundary(t *testing.T) {
	t.Parallel()

	s := StreakState{}
	s = s.RecordPractice(day(2024, 2, 29))
	s = s.RecordPractice(day(2024, 3, 1))
	assert.Equal(t, 2, s.Current)
}

func TestStreakState_MidnightEdges(t *testing.T) {
	t.Parallel()

	// 23:59 and 00:01 the next day are consecutive calendar days even
	// though only two minutes apart.
	late := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)

	s := StreakState{}.RecordPractice(late)
	s = s.RecordPractice(early)
	assert.Equal(t, 2, s.Current)
}

func TestSameCalendarDay(t *testing.T) {
	t.Parallel()

	assert.True(t, SameCalendarDay(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC),
	))
	assert.False(t, SameCalendarDay(
		time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	))
}
