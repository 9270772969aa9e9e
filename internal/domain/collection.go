package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhraseCollection is a named, ordered set of phrase references. Insertion
// order is part of the public contract; membership is unique.
type PhraseCollection struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	PhraseIDs []uuid.UUID `json:"phrase_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewPhraseCollection creates a collection with the given initial members.
// Duplicate initial ids are dropped, keeping the first occurrence.
func NewPhraseCollection(name string, phraseIDs []uuid.UUID, now time.Time) (*PhraseCollection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "collection name is required", ErrEmptyCollectionName)
	}

	c := &PhraseCollection{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, id := range phraseIDs {
		c.appendUnique(id)
	}
	return c, nil
}

// Contains reports whether the phrase is a member of the collection.
func (c *PhraseCollection) Contains(phraseID uuid.UUID) bool {
	for _, id := range c.PhraseIDs {
		if id == phraseID {
			return true
		}
	}
	return false
}

// AddPhrase appends the phrase if it is not already a member and bumps
// UpdatedAt. A duplicate add is a silent no-op and leaves UpdatedAt alone.
// Reports whether the collection changed.
func (c *PhraseCollection) AddPhrase(phraseID uuid.UUID, now time.Time) bool {
	if !c.appendUnique(phraseID) {
		return false
	}
	c.UpdatedAt = now
	return true
}

func (c *PhraseCollection) appendUnique(phraseID uuid.UUID) bool {
	if c.Contains(phraseID) {
		return false
	}
	c.PhraseIDs = append(c.PhraseIDs, phraseID)
	return true
}

// RemovePhrase removes the phrase if present and bumps UpdatedAt. Removing a
// non-member is a silent no-op. Reports whether the collection changed.
func (c *PhraseCollection) RemovePhrase(phraseID uuid.UUID, now time.Time) bool {
	for i, id := range c.PhraseIDs {
		if id == phraseID {
			c.PhraseIDs = append(c.PhraseIDs[:i], c.PhraseIDs[i+1:]...)
			c.UpdatedAt = now
			return true
		}
	}
	return false
}
