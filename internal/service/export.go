package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
	"github.com/sahana-dev/phrasetrack/internal/store"
)

// exportVersion tags the document format for future migrations.
const exportVersion = 1

// ExportDocument is the single transferable snapshot of the engine state.
// Every section is optional: on import, absent sections leave the current
// state untouched, so a partial document imports field by field rather than
// all-or-nothing.
type ExportDocument struct {
	Version           int                       `json:"version"`
	Records           []domain.PhraseRecord     `json:"records,omitempty"`
	Streak            *domain.StreakState       `json:"streak,omitempty"`
	DailyGoal         *int                      `json:"daily_goal,omitempty"`
	DailyProgress     *domain.DailyProgress     `json:"daily_progress,omitempty"`
	Goals             []domain.LearningGoal     `json:"goals,omitempty"`
	Collections       []domain.PhraseCollection `json:"collections,omitempty"`
	Reminders         []domain.PracticeReminder `json:"reminders,omitempty"`
	Sessions          []domain.PracticeSession  `json:"sessions,omitempty"`
	RecentlyPracticed []uuid.UUID               `json:"recently_practiced,omitempty"`
}

// ExportData serializes the entire engine state to one JSON document.
func (e *Engine) ExportData(ctx context.Context) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := ExportDocument{
		Version:           exportVersion,
		Records:           e.recordsSlice(),
		Streak:            &e.streak,
		DailyGoal:         &e.dailyGoal,
		DailyProgress:     &e.daily,
		Goals:             e.goals,
		Collections:       e.collections,
		Reminders:         e.reminders,
		Sessions:          e.sessions,
		RecentlyPracticed: e.recent,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return data, nil
}

// ImportData restores engine state from an exported document. Each present
// section replaces the corresponding in-memory state and is written through;
// absent sections are left unchanged. A document that fails to decode is
// rejected before any state changes.
func (e *Engine) ImportData(ctx context.Context, data []byte) error {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidDocument, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if doc.Records != nil {
		e.setRecords(doc.Records)
		if err := e.saveRecords(ctx); err != nil {
			return err
		}
	}

	if doc.Streak != nil {
		e.streak = *doc.Streak
		if err := e.gw.SaveStreak(ctx, e.streak); err != nil {
			return err
		}
	}

	if doc.DailyGoal != nil {
		e.dailyGoal = *doc.DailyGoal
		if err := e.gw.SaveDailyGoal(ctx, e.dailyGoal); err != nil {
			return err
		}
	}

	if doc.DailyProgress != nil {
		e.daily = *doc.DailyProgress
		if err := e.gw.SaveDailyProgress(ctx, e.daily); err != nil {
			return err
		}
	}

	if doc.Goals != nil {
		e.goals = doc.Goals
		if err := e.saveGoals(ctx); err != nil {
			return err
		}
	}

	if doc.Collections != nil {
		e.collections = doc.Collections
		if err := e.saveCollections(ctx); err != nil {
			return err
		}
	}

	if doc.Reminders != nil {
		e.reminders = doc.Reminders
		if err := e.saveReminders(ctx); err != nil {
			return err
		}
	}

	if doc.Sessions != nil {
		e.sessions = doc.Sessions
		if err := e.gw.SaveSessions(ctx, e.sessions); err != nil {
			return err
		}
	}

	if doc.RecentlyPracticed != nil {
		e.recent = doc.RecentlyPracticed
		if err := e.saveRecent(ctx); err != nil {
			return err
		}
	}

	e.logger.Info("engine state imported",
		slog.Int("phrases", len(e.records)),
		slog.Int("goals", len(e.goals)),
		slog.Int("collections", len(e.collections)))

	return nil
}
