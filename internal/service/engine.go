package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
	"github.com/sahana-dev/phrasetrack/internal/domain/srs"
	"github.com/sahana-dev/phrasetrack/internal/store"
)

// recentLimit caps the recently-practiced list.
const recentLimit = 10

// DefaultDailyGoal is the daily practice target used until the learner sets
// their own.
const DefaultDailyGoal = 5

// activeSession is the in-flight practice session between StartSession and
// EndSession.
type activeSession struct {
	start     time.Time
	practiced int
}

// Engine is the learning progress engine. It reads the full persisted state
// on construction, keeps it in memory as the working copy, and writes each
// section back through the gateway after the mutation that touched it.
//
// When the gateway fails, the mutation is kept in memory and the error is
// surfaced; the in-memory state stays authoritative for the rest of the
// process lifetime. There is no retry logic here.
//
// A mutex makes a shared Engine safe for concurrent callers, but the write
// model is last-writer-wins: concurrent engines over the same persisted
// state must be serialized by the caller.
type Engine struct {
	mu sync.Mutex

	gw        store.Gateway
	logger    *slog.Logger
	scheduler srs.Service
	nowFn     func() time.Time

	records map[uuid.UUID]*domain.PhraseRecord
	order   []uuid.UUID // insertion order of records, for stable listing

	streak           domain.StreakState
	dailyGoal        int
	defaultDailyGoal int
	daily            domain.DailyProgress
	goals            []domain.LearningGoal
	collections      []domain.PhraseCollection
	reminders        []domain.PracticeReminder
	sessions         []domain.PracticeSession
	recent           []uuid.UUID

	session *activeSession
}

// Option configures an Engine.
type Option func(*Engine)

// WithSRSParams replaces the default SM-2 parameters.
func WithSRSParams(params *srs.Params) Option {
	return func(e *Engine) {
		e.scheduler = srs.NewServiceWithParams(params)
	}
}

// WithScheduler replaces the scheduler wholesale.
func WithScheduler(s srs.Service) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithDefaultDailyGoal sets the daily target used when none has been saved.
func WithDefaultDailyGoal(target int) Option {
	return func(e *Engine) {
		if target > 0 {
			e.defaultDailyGoal = target
		}
	}
}

// WithNowFunc replaces the clock used for created/updated timestamps.
// Operations whose semantics depend on "now" (reviews, streaks, sessions)
// take it as an explicit argument instead.
func WithNowFunc(now func() time.Time) Option {
	return func(e *Engine) {
		e.nowFn = now
	}
}

// NewEngine loads the full engine state from the gateway. A section that has
// never been saved starts from defaults; any other gateway failure aborts
// construction, since the engine cannot tell an empty store from a broken one.
// If logger is nil, a default logger is used.
func NewEngine(ctx context.Context, gw store.Gateway, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if gw == nil {
		return nil, domain.NewValidationError("gateway", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		gw:               gw,
		logger:           logger.With(slog.String("component", "engine")),
		scheduler:        srs.NewDefaultService(),
		nowFn:            func() time.Time { return time.Now().UTC() },
		records:          make(map[uuid.UUID]*domain.PhraseRecord),
		defaultDailyGoal: DefaultDailyGoal,
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.loadAll(ctx); err != nil {
		return nil, err
	}

	e.logger.Info("engine loaded",
		slog.Int("phrases", len(e.records)),
		slog.Int("goals", len(e.goals)),
		slog.Int("collections", len(e.collections)),
		slog.Int("sessions", len(e.sessions)))

	return e, nil
}

// loadAll pulls every state section from the gateway, treating not-found as
// "start from defaults".
func (e *Engine) loadAll(ctx context.Context) error {
	records, err := e.gw.LoadRecords(ctx)
	if err != nil && !store.IsNotFoundError(err) {
		return err
	}
	e.setRecords(records)

	if e.streak, err = e.gw.LoadStreak(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.streak = domain.StreakState{}
	}

	if e.dailyGoal, err = e.gw.LoadDailyGoal(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.dailyGoal = e.defaultDailyGoal
	}

	if e.daily, err = e.gw.LoadDailyProgress(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.daily = domain.DailyProgress{}
	}

	if e.goals, err = e.gw.LoadGoals(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.goals = nil
	}

	if e.collections, err = e.gw.LoadCollections(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.collections = nil
	}

	if e.reminders, err = e.gw.LoadReminders(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.reminders = nil
	}

	if e.sessions, err = e.gw.LoadSessions(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.sessions = nil
	}

	if e.recent, err = e.gw.LoadRecentlyPracticed(ctx); err != nil {
		if !store.IsNotFoundError(err) {
			return err
		}
		e.recent = nil
	}

	return nil
}

// setRecords rebuilds the id index and insertion order from a loaded slice.
func (e *Engine) setRecords(records []domain.PhraseRecord) {
	e.records = make(map[uuid.UUID]*domain.PhraseRecord, len(records))
	e.order = make([]uuid.UUID, 0, len(records))
	for i := range records {
		rec := records[i]
		if _, ok := e.records[rec.ID]; ok {
			continue
		}
		e.records[rec.ID] = &rec
		e.order = append(e.order, rec.ID)
	}
}

// recordsSlice returns the records in insertion order, by value.
func (e *Engine) recordsSlice() []domain.PhraseRecord {
	out := make([]domain.PhraseRecord, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, *e.records[id])
	}
	return out
}

// saveRecords writes the record set through the gateway.
func (e *Engine) saveRecords(ctx context.Context) error {
	if err := e.gw.SaveRecords(ctx, e.recordsSlice()); err != nil {
		e.logger.Warn("failed to persist phrase records", slog.Any("error", err))
		return err
	}
	return nil
}

// AddPhrase registers a new phrase with the engine and returns its learning
// record, created with defaults (mastery New, never reviewed, ease 2.5).
func (e *Engine) AddPhrase(ctx context.Context, category, difficulty string) (domain.PhraseRecord, error) {
	return e.AddPhraseWithID(ctx, uuid.New(), category, difficulty)
}

// AddPhraseWithID registers a phrase under a caller-supplied id, which must
// be stable across sessions and unique within the engine.
func (e *Engine) AddPhraseWithID(ctx context.Context, id uuid.UUID, category, difficulty string) (domain.PhraseRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.records[id]; ok {
		return domain.PhraseRecord{}, ErrDuplicatePhrase
	}

	rec, err := domain.NewPhraseRecord(id, category, difficulty, e.nowFn())
	if err != nil {
		return domain.PhraseRecord{}, err
	}

	e.records[id] = rec
	e.order = append(e.order, id)

	return *rec, e.saveRecords(ctx)
}

// RemovePhrase drops a phrase's learning record, typically because the
// phrase left the catalog. It also removes the phrase from every collection
// and from the recently-practiced list.
func (e *Engine) RemovePhrase(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.records[id]; !ok {
		return ErrPhraseNotFound
	}

	delete(e.records, id)
	for i, oid := range e.order {
		if oid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}

	now := e.nowFn()
	collectionsChanged := false
	for i := range e.collections {
		if e.collections[i].RemovePhrase(id, now) {
			collectionsChanged = true
		}
	}

	recentChanged := e.dropRecent(id)

	if err := e.saveRecords(ctx); err != nil {
		return err
	}
	if collectionsChanged {
		if err := e.saveCollections(ctx); err != nil {
			return err
		}
	}
	if recentChanged {
		if err := e.saveRecent(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Phrase returns the learning record for one phrase.
func (e *Engine) Phrase(id uuid.UUID) (domain.PhraseRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return domain.PhraseRecord{}, ErrPhraseNotFound
	}
	return *rec, nil
}

// Phrases returns all learning records in insertion order.
func (e *Engine) Phrases() []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.recordsSlice()
}

// SetMastery overrides a phrase's mastery level directly, the manual
// "mark as" path. Any level can be set from any state.
func (e *Engine) SetMastery(ctx context.Context, id uuid.UUID, level domain.MasteryLevel) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return ErrPhraseNotFound
	}

	if err := rec.SetMastery(level, e.nowFn()); err != nil {
		return err
	}

	return e.saveRecords(ctx)
}

// ToggleFavorite flips a phrase's favorite flag.
func (e *Engine) ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.records[id]
	if !ok {
		return false, ErrPhraseNotFound
	}

	rec.Favorite = !rec.Favorite
	rec.UpdatedAt = e.nowFn()

	return rec.Favorite, e.saveRecords(ctx)
}

// Close releases the underlying gateway.
func (e *Engine) Close() error {
	return e.gw.Close()
}
