package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyProgress_CountFor(t *testing.T) {
	t.Parallel()
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var empty DailyProgress
	assert.Zero(t, empty.CountFor(noon))

	progress := DailyProgress{Day: "2024-03-10", Count: 7}
	assert.Equal(t, 7, progress.CountFor(noon))

	// A stored entry from an earlier day reads as zero.
	assert.Zero(t, progress.CountFor(noon.AddDate(0, 0, 1)))
}

func TestDailyProgress_Increment(t *testing.T) {
	t.Parallel()
	noon := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var progress DailyProgress
	progress = progress.Increment(noon)
	assert.Equal(t, DailyProgress{Day: "2024-03-10", Count: 1}, progress)

	progress = progress.Increment(noon.Add(time.Hour))
	assert.Equal(t, 2, progress.Count)

	// Crossing midnight resets the counter before counting.
	nextDay := time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)
	progress = progress.Increment(nextDay)
	assert.Equal(t, DailyProgress{Day: "2024-03-11", Count: 1}, progress)
}

func TestDayKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-02-29", DayKey(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01", DayKey(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
