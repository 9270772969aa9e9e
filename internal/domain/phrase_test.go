package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhraseRecord_Defaults(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, err := NewPhraseRecord(uuid.New(), "greetings", "beginner", now)
	require.NoError(t, err)

	assert.Equal(t, MasteryNew, rec.Mastery)
	assert.True(t, rec.Review.Unreviewed())
	assert.Equal(t, 0.0, rec.Review.IntervalDays)
	assert.Equal(t, DefaultEaseFactor, rec.Review.EaseFactor)
	assert.Equal(t, 0, rec.Review.Repetitions)
	assert.False(t, rec.Favorite)
}

func TestNewPhraseRecord_RejectsNilID(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewPhraseRecord(uuid.Nil, "greetings", "beginner", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPhraseIDEmpty)
}

func TestPhraseRecord_Validate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		mutate  func(*PhraseRecord)
		wantErr error
	}{
		{
			name:    "negative interval",
			mutate:  func(r *PhraseRecord) { r.Review.IntervalDays = -1 },
			wantErr: ErrNegativeInterval,
		},
		{
			name:    "ease factor below floor",
			mutate:  func(r *PhraseRecord) { r.Review.EaseFactor = 1.2 },
			wantErr: ErrEaseFactorTooLow,
		},
		{
			name:    "negative repetitions",
			mutate:  func(r *PhraseRecord) { r.Review.Repetitions = -1 },
			wantErr: ErrNegativeRepetitions,
		},
		{
			name:    "unknown mastery level",
			mutate:  func(r *PhraseRecord) { r.Mastery = "expert" },
			wantErr: ErrInvalidMasteryLevel,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, err := NewPhraseRecord(uuid.New(), "greetings", "beginner", now)
			require.NoError(t, err)

			tc.mutate(rec)
			assert.ErrorIs(t, rec.Validate(), tc.wantErr)
		})
	}
}

func TestPhraseRecord_SetMastery(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, err := NewPhraseRecord(uuid.New(), "greetings", "beginner", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, rec.SetMastery(MasteryMastered, later))
	assert.Equal(t, MasteryMastered, rec.Mastery)
	assert.Equal(t, later, rec.UpdatedAt)

	// Any level is reachable from any other, including regression.
	require.NoError(t, rec.SetMastery(MasteryNew, later))
	assert.Equal(t, MasteryNew, rec.Mastery)

	assert.ErrorIs(t, rec.SetMastery("expert", later), ErrInvalidMasteryLevel)
}

func TestMasteryFromQuality(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		quality  int
		expected MasteryLevel
	}{
		{quality: 0, expected: MasteryNew},
		{quality: 1, expected: MasteryNew},
		{quality: 2, expected: MasteryLearning},
		{quality: 3, expected: MasteryLearning},
		{quality: 4, expected: MasteryMastered},
		{quality: 5, expected: MasteryMastered},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, MasteryFromQuality(tc.quality), "quality %d", tc.quality)
	}
}

func TestMasteryLevel_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, MasteryNew.Valid())
	assert.True(t, MasteryLearning.Valid())
	assert.True(t, MasteryMastered.Valid())
	assert.False(t, MasteryLevel("expert").Valid())
	assert.False(t, MasteryLevel("").Valid())
}
