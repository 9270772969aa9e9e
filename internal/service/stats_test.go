package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// seedStatsEngine registers a small fixture set: two greetings (one
// mastered, one learning), one food phrase (new, favorited).
func seedStatsEngine(t *testing.T) *Engine {
	t.Helper()
	ctx := context.Background()
	e := newTestEngine(t)

	mastered, err := e.AddPhrase(ctx, "greetings", "beginner")
	require.NoError(t, err)
	require.NoError(t, e.SetMastery(ctx, mastered.ID, domain.MasteryMastered))

	learning, err := e.AddPhrase(ctx, "greetings", "intermediate")
	require.NoError(t, err)
	require.NoError(t, e.SetMastery(ctx, learning.ID, domain.MasteryLearning))

	fresh, err := e.AddPhrase(ctx, "food", "beginner")
	require.NoError(t, err)
	_, err = e.ToggleFavorite(ctx, fresh.ID)
	require.NoError(t, err)

	return e
}

func TestCounts(t *testing.T) {
	t.Parallel()
	e := seedStatsEngine(t)

	assert.Equal(t, 3, e.TotalPhrases())
	assert.Equal(t, 1, e.CountByMastery(domain.MasteryMastered))
	assert.Equal(t, 1, e.CountByMastery(domain.MasteryLearning))
	assert.Equal(t, 1, e.CountByMastery(domain.MasteryNew))
	assert.Equal(t, 2, e.CountByDifficulty("beginner"))
	assert.Equal(t, 1, e.CountByDifficulty("intermediate"))
	assert.Equal(t, 2, e.CountByCategory("greetings"))
	assert.Equal(t, 1, e.CountByCategoryAndMastery("greetings", domain.MasteryMastered))
	assert.Zero(t, e.CountByCategoryAndMastery("food", domain.MasteryMastered))
}

func TestMasteryBreakdown(t *testing.T) {
	t.Parallel()
	e := seedStatsEngine(t)

	assert.Equal(t, map[domain.MasteryLevel]int{
		domain.MasteryNew:      1,
		domain.MasteryLearning: 1,
		domain.MasteryMastered: 1,
	}, e.MasteryBreakdown())
}

func TestMasteryBreakdown_EmptyEngineHasAllLevels(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	assert.Equal(t, map[domain.MasteryLevel]int{
		domain.MasteryNew:      0,
		domain.MasteryLearning: 0,
		domain.MasteryMastered: 0,
	}, e.MasteryBreakdown())
}

func TestPhrasesByCategory(t *testing.T) {
	t.Parallel()
	e := seedStatsEngine(t)

	greetings := e.PhrasesByCategory("greetings")
	require.Len(t, greetings, 2)
	for _, rec := range greetings {
		assert.Equal(t, "greetings", rec.Category)
	}

	assert.Empty(t, e.PhrasesByCategory("missing"))
}

func TestFavorites(t *testing.T) {
	t.Parallel()
	e := seedStatsEngine(t)

	favorites := e.Favorites()
	require.Len(t, favorites, 1)
	assert.Equal(t, "food", favorites[0].Category)
	assert.Equal(t, 1, e.FavoriteCount())
}

func TestPhrasesNeedingReview(t *testing.T) {
	t.Parallel()
	e := seedStatsEngine(t)

	needing := e.PhrasesNeedingReview()
	require.Len(t, needing, 2)
	for _, rec := range needing {
		assert.NotEqual(t, domain.MasteryMastered, rec.Mastery)
	}
}
