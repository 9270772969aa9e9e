package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahana-dev/phrasetrack/internal/domain"
	"github.com/sahana-dev/phrasetrack/internal/store"
)

func openTestGateway(t *testing.T) *Gateway {
	t.Helper()

	path := filepath.Join(t.TempDir(), "phrasetrack.db")
	gw, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, gw.Close())
	})
	return gw
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "data", "phrasetrack.db")
	gw, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
}

func TestGateway_NotFoundUntilSaved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := openTestGateway(t)

	_, err := gw.LoadRecords(ctx)
	assert.ErrorIs(t, err, store.ErrRecordsNotFound)
	assert.True(t, store.IsNotFoundError(err))

	_, err = gw.LoadStreak(ctx)
	assert.ErrorIs(t, err, store.ErrStreakNotFound)

	_, err = gw.LoadDailyGoal(ctx)
	assert.ErrorIs(t, err, store.ErrDailyGoalNotFound)

	_, err = gw.LoadSessions(ctx)
	assert.ErrorIs(t, err, store.ErrSessionsNotFound)
}

func TestGateway_RecordsRoundtrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	gw := openTestGateway(t)

	rec, err := domain.NewPhraseRecord(uuid.New(), "greetings", "beginner", now)
	require.NoError(t, err)
	rec.Review = domain.ReviewState{
		LastReviewedAt: now,
		IntervalDays:   6,
		EaseFactor:     2.6,
		Repetitions:    2,
	}
	rec.Mastery = domain.MasteryMastered

	require.NoError(t, gw.SaveRecords(ctx, []domain.PhraseRecord{*rec}))

	records, err := gw.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, domain.MasteryMastered, records[0].Mastery)
	assert.Equal(t, 6.0, records[0].Review.IntervalDays)
	assert.Equal(t, 2.6, records[0].Review.EaseFactor)
	assert.True(t, rec.Review.LastReviewedAt.Equal(records[0].Review.LastReviewedAt))
}

func TestGateway_SaveOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := openTestGateway(t)

	require.NoError(t, gw.SaveDailyGoal(ctx, 5))
	require.NoError(t, gw.SaveDailyGoal(ctx, 12))

	target, err := gw.LoadDailyGoal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, target)
}

func TestGateway_AppendSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	gw := openTestGateway(t)

	first := domain.NewPracticeSession(start, start.Add(5*time.Minute), 3, map[domain.MasteryLevel]int{
		domain.MasteryNew: 2, domain.MasteryLearning: 1, domain.MasteryMastered: 0,
	})
	second := domain.NewPracticeSession(start.Add(time.Hour), start.Add(70*time.Minute), 5, nil)

	require.NoError(t, gw.AppendSession(ctx, first))
	require.NoError(t, gw.AppendSession(ctx, second))

	sessions, err := gw.LoadSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)
	assert.Equal(t, 300.0, sessions[0].Duration)
}

func TestGateway_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "phrasetrack.db")

	gw, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, gw.SaveStreak(ctx, domain.StreakState{Current: 9, LastPracticed: now}))
	require.NoError(t, gw.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	streak, err := reopened.LoadStreak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, streak.Current)
	assert.True(t, now.Equal(streak.LastPracticed))
}
