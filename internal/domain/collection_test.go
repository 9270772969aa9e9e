package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhraseCollection(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	coll, err := NewPhraseCollection("Office", []uuid.UUID{a, b, a}, now)
	require.NoError(t, err)

	// Duplicate initial ids are dropped, keeping the first occurrence.
	assert.Equal(t, []uuid.UUID{a, b}, coll.PhraseIDs)
	assert.Equal(t, now, coll.CreatedAt)
}

func TestNewPhraseCollection_EmptyName(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := NewPhraseCollection("  ", nil, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCollectionName)
}

func TestPhraseCollection_AddPhrase_DuplicateIsNoOp(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	id := uuid.New()

	coll, err := NewPhraseCollection("Office", nil, created)
	require.NoError(t, err)

	assert.True(t, coll.AddPhrase(id, later))
	require.Len(t, coll.PhraseIDs, 1)
	assert.Equal(t, later, coll.UpdatedAt)

	// The duplicate add changes nothing, including the timestamp.
	assert.False(t, coll.AddPhrase(id, later.Add(time.Hour)))
	assert.Len(t, coll.PhraseIDs, 1)
	assert.Equal(t, later, coll.UpdatedAt)
}

func TestPhraseCollection_AddPhrase_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	coll, err := NewPhraseCollection("Office", nil, now)
	require.NoError(t, err)

	for _, id := range ids {
		coll.AddPhrase(id, now)
	}
	assert.Equal(t, ids, coll.PhraseIDs)
}

func TestPhraseCollection_RemovePhrase(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	coll, err := NewPhraseCollection("Office", []uuid.UUID{a, b, c}, created)
	require.NoError(t, err)

	later := created.Add(time.Hour)
	assert.True(t, coll.RemovePhrase(b, later))
	assert.Equal(t, []uuid.UUID{a, c}, coll.PhraseIDs)
	assert.Equal(t, later, coll.UpdatedAt)

	// Removing a non-member is a no-op.
	assert.False(t, coll.RemovePhrase(uuid.New(), later.Add(time.Hour)))
	assert.Equal(t, later, coll.UpdatedAt)
}
