package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GoalStatus partitions learning goals into three mutually exclusive buckets.
type GoalStatus string

// Possible goal statuses.
const (
	GoalActive    GoalStatus = "active"    // not completed, deadline not passed
	GoalCompleted GoalStatus = "completed" // explicitly or automatically completed
	GoalOverdue   GoalStatus = "overdue"   // not completed, deadline passed
)

// LearningGoal is a longer-term target of phrases to master by a deadline.
type LearningGoal struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Target    int       `json:"target"`  // phrases to master
	Current   int       `json:"current"` // phrases currently mastered
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Completed bool      `json:"completed"`
}

// NewLearningGoal creates a goal with zero progress. The name must be
// non-empty and the target positive; both are rejected before any state is
// created.
func NewLearningGoal(name string, target int, deadline, now time.Time) (*LearningGoal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "goal name is required", ErrEmptyGoalName)
	}
	if target <= 0 {
		return nil, NewValidationError("target", "goal target must be positive", ErrInvalidGoalTarget)
	}

	return &LearningGoal{
		ID:        uuid.New(),
		Name:      name,
		Target:    target,
		Current:   0,
		Deadline:  deadline,
		CreatedAt: now,
		UpdatedAt: now,
		Completed: false,
	}, nil
}

// UpdateProgress sets the current mastered count and completes the goal when
// the target is reached. Completion is sticky: a later drop below the target
// does not reopen the goal, only an explicit Reopen does.
func (g *LearningGoal) UpdateProgress(masteredCount int, now time.Time) {
	g.Current = masteredCount
	g.UpdatedAt = now

	if g.Current >= g.Target {
		g.Completed = true
	}
}

// MarkCompleted completes the goal regardless of progress. Idempotent.
func (g *LearningGoal) MarkCompleted(now time.Time) {
	g.Completed = true
	g.UpdatedAt = now
}

// Reopen clears the completed flag. Idempotent.
func (g *LearningGoal) Reopen(now time.Time) {
	g.Completed = false
	g.UpdatedAt = now
}

// Status classifies the goal at the given instant. The three statuses are a
// disjoint cover: completed wins over deadline checks, and a goal whose
// deadline has passed without completion is overdue.
func (g *LearningGoal) Status(now time.Time) GoalStatus {
	switch {
	case g.Completed:
		return GoalCompleted
	case g.Deadline.Before(now):
		return GoalOverdue
	default:
		return GoalActive
	}
}

// ProgressPercent returns completion as a percentage of the target.
func (g *LearningGoal) ProgressPercent() float64 {
	if g.Target <= 0 {
		return 0
	}
	return float64(g.Current) / float64(g.Target) * 100
}

// DaysRemaining returns the whole days from now until the deadline.
// Negative once the deadline has passed.
func (g *LearningGoal) DaysRemaining(now time.Time) int {
	return int(g.Deadline.Sub(now).Hours() / 24)
}
