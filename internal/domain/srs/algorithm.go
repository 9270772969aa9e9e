// Package srs implements the SM-2 spaced-repetition scheduler that decides
// when a phrase should next be reviewed.
package srs

import (
	"time"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease adjustment for a quality
// score and clamps the result to the configured floor.
//
// The adjustment is `0.1 - (5-q)*(0.08 + (5-q)*0.02)`: a perfect recall
// raises the ease factor by 0.1, a quality of 4 leaves it unchanged, and
// lower scores pull it down progressively harder. The floor keeps intervals
// from collapsing after a run of bad reviews.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	miss := float64(params.MaxQuality - quality)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNextState computes the scheduling state after one review,
// returning a new value rather than mutating the input.
//
// Branches, in order:
//
//   - First review ever (zero repetitions): one-day interval, repetition
//     count becomes 1, whatever the quality. The quality still feeds the
//     ease factor.
//   - Failed recall (quality below the pass threshold): repetitions reset
//     to 0 and the interval drops back to one day.
//   - Successful recall: repetitions increment, and the interval follows
//     the SM-2 ladder — FirstInterval, then SecondInterval, then
//     multiplicative growth by the ease factor with no upper cap.
//
// The ease factor is re-evaluated on every call regardless of which branch
// ran, using the ease factor from before this review.
func calculateNextState(state domain.ReviewState, quality int, now time.Time, params *Params) domain.ReviewState {
	next := state
	next.LastReviewedAt = now

	switch {
	case state.Repetitions == 0:
		next.IntervalDays = params.FirstInterval
		next.Repetitions = 1

	case quality < params.PassThreshold:
		next.Repetitions = 0
		next.IntervalDays = params.FirstInterval

	default:
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = params.FirstInterval
		case 2:
			next.IntervalDays = params.SecondInterval
		default:
			next.IntervalDays = state.IntervalDays * state.EaseFactor
		}
	}

	next.EaseFactor = calculateNewEaseFactor(state.EaseFactor, quality, params)

	return next
}

// dueAt returns the next review date implied by the state. The fractional
// part of the interval is truncated to whole days before it is added to the
// last-reviewed date; this truncation is deliberate and matched by the
// DaysUntilDue arithmetic.
func dueAt(state domain.ReviewState) time.Time {
	return state.LastReviewedAt.AddDate(0, 0, int(state.IntervalDays))
}

// isDue reports whether the phrase should be shown at the given instant. A
// phrase that has never been reviewed is always due.
func isDue(state domain.ReviewState, now time.Time) bool {
	if state.Unreviewed() {
		return true
	}
	return !now.Before(dueAt(state))
}

// daysUntilDue returns the whole days remaining until the next review,
// floored at zero. An unreviewed phrase is due now.
func daysUntilDue(state domain.ReviewState, now time.Time) int {
	if state.Unreviewed() {
		return 0
	}

	days := int(dueAt(state).Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
