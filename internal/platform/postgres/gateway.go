// Package postgres implements the persistence gateway on PostgreSQL, for
// installations that keep learner state on a shared database instead of a
// local file.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"

	"github.com/sahana-dev/phrasetrack/internal/domain"
	"github.com/sahana-dev/phrasetrack/internal/store"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Same section keys as the sqlite gateway, so an export from one backend
// reads naturally against the other.
const (
	keyRecords       = "phrase_records"
	keyStreak        = "streak"
	keyDailyGoal     = "daily_goal"
	keyDailyProgress = "daily_progress"
	keyGoals         = "learning_goals"
	keyCollections   = "collections"
	keyReminders     = "reminders"
	keySessions      = "practice_history"
	keyRecent        = "recently_practiced"
)

// Gateway is a PostgreSQL-backed store.Gateway.
type Gateway struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to the database, runs pending migrations, and returns a
// ready gateway. The connection is owned by the gateway and released by
// Close. If logger is nil, a default logger is used.
func Open(ctx context.Context, url string, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Gateway{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_gateway")),
	}, nil
}

// migrate applies the embedded goose migrations.
func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Ensure Gateway implements the store.Gateway interface.
var _ store.Gateway = (*Gateway)(nil)

func (g *Gateway) load(ctx context.Context, key, section string, notFound error, dest any) error {
	var raw []byte
	err := g.db.QueryRowContext(ctx,
		"SELECT value FROM engine_state WHERE key = $1", key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return store.NewGatewayError(section, "load", fmt.Errorf("%w: %v", store.ErrUnavailable, err))
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return store.NewGatewayError(section, "decode", err)
	}
	return nil
}

func (g *Gateway) save(ctx context.Context, key, section string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return store.NewGatewayError(section, "encode", err)
	}

	_, err = g.db.ExecContext(ctx,
		`INSERT INTO engine_state (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw,
	)
	if err != nil {
		return store.NewGatewayError(section, "save", fmt.Errorf("%w: %v", store.ErrUnavailable, err))
	}
	return nil
}

// LoadRecords implements store.Gateway.LoadRecords.
func (g *Gateway) LoadRecords(ctx context.Context) ([]domain.PhraseRecord, error) {
	var records []domain.PhraseRecord
	if err := g.load(ctx, keyRecords, "records", store.ErrRecordsNotFound, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveRecords implements store.Gateway.SaveRecords.
func (g *Gateway) SaveRecords(ctx context.Context, records []domain.PhraseRecord) error {
	return g.save(ctx, keyRecords, "records", records)
}

// LoadStreak implements store.Gateway.LoadStreak.
func (g *Gateway) LoadStreak(ctx context.Context) (domain.StreakState, error) {
	var streak domain.StreakState
	if err := g.load(ctx, keyStreak, "streak", store.ErrStreakNotFound, &streak); err != nil {
		return domain.StreakState{}, err
	}
	return streak, nil
}

// SaveStreak implements store.Gateway.SaveStreak.
func (g *Gateway) SaveStreak(ctx context.Context, streak domain.StreakState) error {
	return g.save(ctx, keyStreak, "streak", streak)
}

// LoadDailyGoal implements store.Gateway.LoadDailyGoal.
func (g *Gateway) LoadDailyGoal(ctx context.Context) (int, error) {
	var target int
	if err := g.load(ctx, keyDailyGoal, "daily goal", store.ErrDailyGoalNotFound, &target); err != nil {
		return 0, err
	}
	return target, nil
}

// SaveDailyGoal implements store.Gateway.SaveDailyGoal.
func (g *Gateway) SaveDailyGoal(ctx context.Context, target int) error {
	return g.save(ctx, keyDailyGoal, "daily goal", target)
}

// LoadDailyProgress implements store.Gateway.LoadDailyProgress.
func (g *Gateway) LoadDailyProgress(ctx context.Context) (domain.DailyProgress, error) {
	var progress domain.DailyProgress
	if err := g.load(ctx, keyDailyProgress, "daily progress", store.ErrDailyProgressNotFound, &progress); err != nil {
		return domain.DailyProgress{}, err
	}
	return progress, nil
}

// SaveDailyProgress implements store.Gateway.SaveDailyProgress.
func (g *Gateway) SaveDailyProgress(ctx context.Context, progress domain.DailyProgress) error {
	return g.save(ctx, keyDailyProgress, "daily progress", progress)
}

// LoadGoals implements store.Gateway.LoadGoals.
func (g *Gateway) LoadGoals(ctx context.Context) ([]domain.LearningGoal, error) {
	var goals []domain.LearningGoal
	if err := g.load(ctx, keyGoals, "goals", store.ErrGoalsNotFound, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals implements store.Gateway.SaveGoals.
func (g *Gateway) SaveGoals(ctx context.Context, goals []domain.LearningGoal) error {
	return g.save(ctx, keyGoals, "goals", goals)
}

// LoadCollections implements store.Gateway.LoadCollections.
func (g *Gateway) LoadCollections(ctx context.Context) ([]domain.PhraseCollection, error) {
	var collections []domain.PhraseCollection
	if err := g.load(ctx, keyCollections, "collections", store.ErrCollectionsNotFound, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// SaveCollections implements store.Gateway.SaveCollections.
func (g *Gateway) SaveCollections(ctx context.Context, collections []domain.PhraseCollection) error {
	return g.save(ctx, keyCollections, "collections", collections)
}

// LoadReminders implements store.Gateway.LoadReminders.
func (g *Gateway) LoadReminders(ctx context.Context) ([]domain.PracticeReminder, error) {
	var reminders []domain.PracticeReminder
	if err := g.load(ctx, keyReminders, "reminders", store.ErrRemindersNotFound, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// SaveReminders implements store.Gateway.SaveReminders.
func (g *Gateway) SaveReminders(ctx context.Context, reminders []domain.PracticeReminder) error {
	return g.save(ctx, keyReminders, "reminders", reminders)
}

// LoadSessions implements store.Gateway.LoadSessions.
func (g *Gateway) LoadSessions(ctx context.Context) ([]domain.PracticeSession, error) {
	var sessions []domain.PracticeSession
	if err := g.load(ctx, keySessions, "sessions", store.ErrSessionsNotFound, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// AppendSession implements store.Gateway.AppendSession.
func (g *Gateway) AppendSession(ctx context.Context, session domain.PracticeSession) error {
	sessions, err := g.LoadSessions(ctx)
	if err != nil && !store.IsNotFoundError(err) {
		return err
	}
	sessions = append(sessions, session)
	return g.save(ctx, keySessions, "sessions", sessions)
}

// SaveSessions implements store.Gateway.SaveSessions.
func (g *Gateway) SaveSessions(ctx context.Context, sessions []domain.PracticeSession) error {
	return g.save(ctx, keySessions, "sessions", sessions)
}

// LoadRecentlyPracticed implements store.Gateway.LoadRecentlyPracticed.
func (g *Gateway) LoadRecentlyPracticed(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := g.load(ctx, keyRecent, "recently practiced", store.ErrRecentNotFound, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveRecentlyPracticed implements store.Gateway.SaveRecentlyPracticed.
func (g *Gateway) SaveRecentlyPracticed(ctx context.Context, ids []uuid.UUID) error {
	return g.save(ctx, keyRecent, "recently practiced", ids)
}

// Close implements store.Gateway.Close.
func (g *Gateway) Close() error {
	return g.db.Close()
}
