package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// MemoryGateway is a map-backed Gateway. It backs tests and callers that
// want a throwaway engine; nothing survives the process.
type MemoryGateway struct {
	records       []domain.PhraseRecord
	hasRecords    bool
	streak        domain.StreakState
	hasStreak     bool
	dailyGoal     int
	hasDailyGoal  bool
	progress      domain.DailyProgress
	hasProgress   bool
	goals         []domain.LearningGoal
	hasGoals      bool
	collections   []domain.PhraseCollection
	hasCollection bool
	reminders     []domain.PracticeReminder
	hasReminders  bool
	sessions      []domain.PracticeSession
	hasSessions   bool
	recent        []uuid.UUID
	hasRecent     bool
}

// NewMemoryGateway creates an empty in-memory gateway; every Load returns a
// not-found error until the matching Save has run.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{}
}

// Ensure MemoryGateway implements the Gateway interface.
var _ Gateway = (*MemoryGateway)(nil)

// LoadRecords implements Gateway.LoadRecords.
func (g *MemoryGateway) LoadRecords(ctx context.Context) ([]domain.PhraseRecord, error) {
	if !g.hasRecords {
		return nil, ErrRecordsNotFound
	}
	out := make([]domain.PhraseRecord, len(g.records))
	copy(out, g.records)
	return out, nil
}

// SaveRecords implements Gateway.SaveRecords.
func (g *MemoryGateway) SaveRecords(ctx context.Context, records []domain.PhraseRecord) error {
	g.records = make([]domain.PhraseRecord, len(records))
	copy(g.records, records)
	g.hasRecords = true
	return nil
}

// LoadStreak implements Gateway.LoadStreak.
func (g *MemoryGateway) LoadStreak(ctx context.Context) (domain.StreakState, error) {
	if !g.hasStreak {
		return domain.StreakState{}, ErrStreakNotFound
	}
	return g.streak, nil
}

// SaveStreak implements Gateway.SaveStreak.
func (g *MemoryGateway) SaveStreak(ctx context.Context, streak domain.StreakState) error {
	g.streak = streak
	g.hasStreak = true
	return nil
}

// LoadDailyGoal implements Gateway.LoadDailyGoal.
func (g *MemoryGateway) LoadDailyGoal(ctx context.Context) (int, error) {
	if !g.hasDailyGoal {
		return 0, ErrDailyGoalNotFound
	}
	return g.dailyGoal, nil
}

// SaveDailyGoal implements Gateway.SaveDailyGoal.
func (g *MemoryGateway) SaveDailyGoal(ctx context.Context, target int) error {
	g.dailyGoal = target
	g.hasDailyGoal = true
	return nil
}

// LoadDailyProgress implements Gateway.LoadDailyProgress.
func (g *MemoryGateway) LoadDailyProgress(ctx context.Context) (domain.DailyProgress, error) {
	if !g.hasProgress {
		return domain.DailyProgress{}, ErrDailyProgressNotFound
	}
	return g.progress, nil
}

// SaveDailyProgress implements Gateway.SaveDailyProgress.
func (g *MemoryGateway) SaveDailyProgress(ctx context.Context, progress domain.DailyProgress) error {
	g.progress = progress
	g.hasProgress = true
	return nil
}

// LoadGoals implements Gateway.LoadGoals.
func (g *MemoryGateway) LoadGoals(ctx context.Context) ([]domain.LearningGoal, error) {
	if !g.hasGoals {
		return nil, ErrGoalsNotFound
	}
	out := make([]domain.LearningGoal, len(g.goals))
	copy(out, g.goals)
	return out, nil
}

// SaveGoals implements Gateway.SaveGoals.
func (g *MemoryGateway) SaveGoals(ctx context.Context, goals []domain.LearningGoal) error {
	g.goals = make([]domain.LearningGoal, len(goals))
	copy(g.goals, goals)
	g.hasGoals = true
	return nil
}

// LoadCollections implements Gateway.LoadCollections.
func (g *MemoryGateway) LoadCollections(ctx context.Context) ([]domain.PhraseCollection, error) {
	if !g.hasCollection {
		return nil, ErrCollectionsNotFound
	}
	out := make([]domain.PhraseCollection, len(g.collections))
	copy(out, g.collections)
	return out, nil
}

// SaveCollections implements Gateway.SaveCollections.
func (g *MemoryGateway) SaveCollections(ctx context.Context, collections []domain.PhraseCollection) error {
	g.collections = make([]domain.PhraseCollection, len(collections))
	copy(g.collections, collections)
	g.hasCollection = true
	return nil
}

// LoadReminders implements Gateway.LoadReminders.
func (g *MemoryGateway) LoadReminders(ctx context.Context) ([]domain.PracticeReminder, error) {
	if !g.hasReminders {
		return nil, ErrRemindersNotFound
	}
	out := make([]domain.PracticeReminder, len(g.reminders))
	copy(out, g.reminders)
	return out, nil
}

// SaveReminders implements Gateway.SaveReminders.
func (g *MemoryGateway) SaveReminders(ctx context.Context, reminders []domain.PracticeReminder) error {
	g.reminders = make([]domain.PracticeReminder, len(reminders))
	copy(g.reminders, reminders)
	g.hasReminders = true
	return nil
}

// LoadSessions implements Gateway.LoadSessions.
func (g *MemoryGateway) LoadSessions(ctx context.Context) ([]domain.PracticeSession, error) {
	if !g.hasSessions {
		return nil, ErrSessionsNotFound
	}
	out := make([]domain.PracticeSession, len(g.sessions))
	copy(out, g.sessions)
	return out, nil
}

// AppendSession implements Gateway.AppendSession.
func (g *MemoryGateway) AppendSession(ctx context.Context, session domain.PracticeSession) error {
	g.sessions = append(g.sessions, session)
	g.hasSessions = true
	return nil
}

// SaveSessions implements Gateway.SaveSessions.
func (g *MemoryGateway) SaveSessions(ctx context.Context, sessions []domain.PracticeSession) error {
	g.sessions = make([]domain.PracticeSession, len(sessions))
	copy(g.sessions, sessions)
	g.hasSessions = true
	return nil
}

// LoadRecentlyPracticed implements Gateway.LoadRecentlyPracticed.
func (g *MemoryGateway) LoadRecentlyPracticed(ctx context.Context) ([]uuid.UUID, error) {
	if !g.hasRecent {
		return nil, ErrRecentNotFound
	}
	out := make([]uuid.UUID, len(g.recent))
	copy(out, g.recent)
	return out, nil
}

// SaveRecentlyPracticed implements Gateway.SaveRecentlyPracticed.
func (g *MemoryGateway) SaveRecentlyPracticed(ctx context.Context, ids []uuid.UUID) error {
	g.recent = make([]uuid.UUID, len(ids))
	copy(g.recent, ids)
	g.hasRecent = true
	return nil
}

// Close implements Gateway.Close.
func (g *MemoryGateway) Close() error {
	return nil
}
