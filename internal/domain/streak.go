package domain

import "time"

// StreakState tracks consecutive calendar days with at least one recorded
// practice. The zero value means no practice has ever been recorded.
type StreakState struct {
	Current       int       `json:"current"`
	LastPracticed time.Time `json:"last_practiced"`
}

// SameCalendarDay reports whether a and b fall on the same year/month/day,
// ignoring the time of day.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RecordPractice updates the streak for a practice happening on the given
// day and returns the new state. Day boundaries are calendar days, not
// 24-hour windows:
//
//   - same day as the last practice: no-op, so the call is idempotent
//     within a calendar day;
//   - exactly the next day: streak grows by one;
//   - any larger gap, or a first-ever practice: streak restarts at 1.
//
// A broken streak lands on 1, never 0, because the triggering practice
// itself counts.
func (s StreakState) RecordPractice(today time.Time) StreakState {
	if !s.LastPracticed.IsZero() {
		if SameCalendarDay(today, s.LastPracticed) {
			return s
		}

		yesterday := today.AddDate(0, 0, -1)
		if SameCalendarDay(yesterday, s.LastPracticed) {
			return StreakState{
				Current:       s.Current + 1,
				LastPracticed: today,
			}
		}
	}

	return StreakState{
		Current:       1,
		LastPracticed: today,
	}
}
