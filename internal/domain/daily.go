package domain

import "time"

// dayLayout is the calendar-day key used for daily practice bookkeeping.
const dayLayout = "2006-01-02"

// DailyProgress counts phrases practiced on a single calendar day. The day
// key uses the same calendar-day boundary as StreakState, so the counter and
// the streak always roll over together.
type DailyProgress struct {
	Day   string `json:"day"` // "2006-01-02"
	Count int    `json:"count"`
}

// DayKey formats a timestamp as the calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// CountFor returns the practiced count if the stored day matches now's
// calendar day, and 0 otherwise. A stale entry simply reads as zero; it is
// rewritten on the next recorded practice.
func (d DailyProgress) CountFor(now time.Time) int {
	if d.Day == DayKey(now) {
		return d.Count
	}
	return 0
}

// Increment registers one practiced phrase for now's calendar day, resetting
// the counter first if the stored entry belongs to an earlier day.
func (d DailyProgress) Increment(now time.Time) DailyProgress {
	key := DayKey(now)
	if d.Day != key {
		return DailyProgress{Day: key, Count: 1}
	}
	return DailyProgress{Day: key, Count: d.Count + 1}
}
