package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newTestEngine(t)

	rec, err := e.AddPhrase(ctx, "greetings", "beginner")
	require.NoError(t, err)

	assert.False(t, e.SessionActive())

	start := fixedNow
	e.StartSession(start)
	assert.True(t, e.SessionActive())

	_, err = e.SubmitReview(ctx, rec.ID, 5, start.Add(time.Minute))
	require.NoError(t, err)
	_, err = e.SubmitReview(ctx, rec.ID, 5, start.Add(2*time.Minute))
	require.NoError(t, err)

	session, err := e.EndSession(ctx, start.Add(10*time.Minute))
	require.NoError(t, err)

	assert.False(t, e.SessionActive())
	assert.Equal(t, start, session.Date)
	assert.Equal(t, 2, session.PhrasesPracticed)
	assert.Equal(t, 600.0, session.Duration)

	history := e.History()
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].ID)
}

func TestEndSession_NoActiveSession(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	_, err := e.EndSession(context.Background(), fixedNow)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStartSession_RestartDiscardsCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newTestEngine(t)

	rec, err := e.AddPhrase(ctx, "greetings", "beginner")
	require.NoError(t, err)

	e.StartSession(fixedNow)
	_, err = e.SubmitReview(ctx, rec.ID, 5, fixedNow)
	require.NoError(t, err)

	// Restarting drops the in-flight count.
	restart := fixedNow.Add(time.Hour)
	e.StartSession(restart)

	session, err := e.EndSession(ctx, restart.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, session.PhrasesPracticed)
	assert.Equal(t, restart, session.Date)
}

func TestEndSession_SnapshotCoversWholePhraseSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newTestEngine(t)

	practiced, err := e.AddPhrase(ctx, "greetings", "beginner")
	require.NoError(t, err)
	untouched, err := e.AddPhrase(ctx, "food", "beginner")
	require.NoError(t, err)
	require.NoError(t, e.SetMastery(ctx, untouched.ID, domain.MasteryLearning))

	e.StartSession(fixedNow)
	_, err = e.SubmitReview(ctx, practiced.ID, 5, fixedNow)
	require.NoError(t, err)

	session, err := e.EndSession(ctx, fixedNow.Add(time.Minute))
	require.NoError(t, err)

	// The untouched phrase is counted too, and all three levels are present.
	assert.Equal(t, map[domain.MasteryLevel]int{
		domain.MasteryNew:      0,
		domain.MasteryLearning: 1,
		domain.MasteryMastered: 1,
	}, session.MasteryLevels)
}

func TestReviewsOutsideSessionStillCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newTestEngine(t)

	rec, err := e.AddPhrase(ctx, "greetings", "beginner")
	require.NoError(t, err)

	// No active session: the review succeeds, only the session count is absent.
	_, err = e.SubmitReview(ctx, rec.ID, 4, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 1, e.PracticedToday(fixedNow))

	e.StartSession(fixedNow)
	session, err := e.EndSession(ctx, fixedNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, session.PhrasesPracticed)
}
