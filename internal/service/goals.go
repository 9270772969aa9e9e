package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// CreateGoal adds a learning goal with the given name, phrases-to-master
// target and deadline. Validation failures are rejected before any state
// changes.
func (e *Engine) CreateGoal(ctx context.Context, name string, target int, deadline time.Time) (domain.LearningGoal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal, err := domain.NewLearningGoal(name, target, deadline, e.nowFn())
	if err != nil {
		return domain.LearningGoal{}, err
	}

	e.goals = append(e.goals, *goal)
	return *goal, e.saveGoals(ctx)
}

// DeleteGoal removes a learning goal.
func (e *Engine) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.goals {
		if e.goals[i].ID == id {
			e.goals = append(e.goals[:i], e.goals[i+1:]...)
			return e.saveGoals(ctx)
		}
	}
	return ErrGoalNotFound
}

// Goal returns one learning goal by id.
func (e *Engine) Goal(id uuid.UUID) (domain.LearningGoal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal := e.findGoal(id)
	if goal == nil {
		return domain.LearningGoal{}, ErrGoalNotFound
	}
	return *goal, nil
}

// Goals returns all learning goals in creation order.
func (e *Engine) Goals() []domain.LearningGoal {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.LearningGoal, len(e.goals))
	copy(out, e.goals)
	return out
}

// RefreshGoalProgress re-scans the mastered-phrase count and updates every
// goal's progress against it. A goal whose target is reached completes and
// stays completed even if the count later drops; only Reopen reverses that.
func (e *Engine) RefreshGoalProgress(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	mastered := 0
	for _, rec := range e.records {
		if rec.Mastery == domain.MasteryMastered {
			mastered++
		}
	}

	now := e.nowFn()
	for i := range e.goals {
		e.goals[i].UpdateProgress(mastered, now)
	}

	e.logger.Debug("goal progress refreshed",
		slog.Int("mastered", mastered),
		slog.Int("goals", len(e.goals)))

	return e.saveGoals(ctx)
}

// CompleteGoal explicitly marks a goal completed, regardless of progress.
// Completing an already-completed goal only bumps its updated timestamp.
func (e *Engine) CompleteGoal(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal := e.findGoal(id)
	if goal == nil {
		return ErrGoalNotFound
	}

	goal.MarkCompleted(e.nowFn())
	return e.saveGoals(ctx)
}

// ReopenGoal clears a goal's completed flag.
func (e *Engine) ReopenGoal(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal := e.findGoal(id)
	if goal == nil {
		return ErrGoalNotFound
	}

	goal.Reopen(e.nowFn())
	return e.saveGoals(ctx)
}

// ActiveGoals returns goals that are neither completed nor past deadline.
// Together with CompletedGoals and OverdueGoals this partitions the goal
// set: every goal lands in exactly one bucket.
func (e *Engine) ActiveGoals(now time.Time) []domain.LearningGoal {
	return e.goalsWithStatus(domain.GoalActive, now)
}

// CompletedGoals returns completed goals.
func (e *Engine) CompletedGoals(now time.Time) []domain.LearningGoal {
	return e.goalsWithStatus(domain.GoalCompleted, now)
}

// OverdueGoals returns goals past their deadline that were never completed.
func (e *Engine) OverdueGoals(now time.Time) []domain.LearningGoal {
	return e.goalsWithStatus(domain.GoalOverdue, now)
}

func (e *Engine) goalsWithStatus(status domain.GoalStatus, now time.Time) []domain.LearningGoal {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.LearningGoal
	for _, g := range e.goals {
		if g.Status(now) == status {
			out = append(out, g)
		}
	}
	return out
}

func (e *Engine) findGoal(id uuid.UUID) *domain.LearningGoal {
	for i := range e.goals {
		if e.goals[i].ID == id {
			return &e.goals[i]
		}
	}
	return nil
}

func (e *Engine) saveGoals(ctx context.Context) error {
	if err := e.gw.SaveGoals(ctx, e.goals); err != nil {
		e.logger.Warn("failed to persist learning goals", slog.Any("error", err))
		return err
	}
	return nil
}
