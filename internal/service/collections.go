package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// CreateCollection adds a named collection with the given initial phrase
// ids. Duplicate ids in the initial set are dropped, keeping the first.
func (e *Engine) CreateCollection(ctx context.Context, name string, phraseIDs []uuid.UUID) (domain.PhraseCollection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	coll, err := domain.NewPhraseCollection(name, phraseIDs, e.nowFn())
	if err != nil {
		return domain.PhraseCollection{}, err
	}

	e.collections = append(e.collections, *coll)
	return *coll, e.saveCollections(ctx)
}

// RenameCollection changes a collection's name.
func (e *Engine) RenameCollection(ctx context.Context, id uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("name", "collection name is required", domain.ErrEmptyCollectionName)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	coll := e.findCollection(id)
	if coll == nil {
		return ErrCollectionNotFound
	}

	coll.Name = name
	coll.UpdatedAt = e.nowFn()
	return e.saveCollections(ctx)
}

// DeleteCollection removes a collection. Collections are never deleted
// implicitly; this is the only path.
func (e *Engine) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.collections {
		if e.collections[i].ID == id {
			e.collections = append(e.collections[:i], e.collections[i+1:]...)
			return e.saveCollections(ctx)
		}
	}
	return ErrCollectionNotFound
}

// AddToCollection adds a phrase to a collection. Adding a phrase that is
// already a member is a silent no-op that skips the write-through. The
// phrase must be registered with the engine.
func (e *Engine) AddToCollection(ctx context.Context, collectionID, phraseID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	coll := e.findCollection(collectionID)
	if coll == nil {
		return ErrCollectionNotFound
	}
	if _, ok := e.records[phraseID]; !ok {
		return ErrPhraseNotFound
	}

	if !coll.AddPhrase(phraseID, e.nowFn()) {
		return nil
	}

	e.logger.Debug("phrase added to collection",
		slog.String("collection_id", collectionID.String()),
		slog.String("phrase_id", phraseID.String()))

	return e.saveCollections(ctx)
}

// RemoveFromCollection removes a phrase from a collection. Removing a
// non-member is a silent no-op.
func (e *Engine) RemoveFromCollection(ctx context.Context, collectionID, phraseID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	coll := e.findCollection(collectionID)
	if coll == nil {
		return ErrCollectionNotFound
	}

	if !coll.RemovePhrase(phraseID, e.nowFn()) {
		return nil
	}

	return e.saveCollections(ctx)
}

// Collection returns one collection by id.
func (e *Engine) Collection(id uuid.UUID) (domain.PhraseCollection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	coll := e.findCollection(id)
	if coll == nil {
		return domain.PhraseCollection{}, ErrCollectionNotFound
	}
	return *coll, nil
}

// Collections returns all collections in creation order.
func (e *Engine) Collections() []domain.PhraseCollection {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.PhraseCollection, len(e.collections))
	copy(out, e.collections)
	return out
}

// CollectionPhrases returns the learning records of a collection's members
// in the collection's insertion order. Members whose record has been
// removed are skipped.
func (e *Engine) CollectionPhrases(id uuid.UUID) ([]domain.PhraseRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	coll := e.findCollection(id)
	if coll == nil {
		return nil, ErrCollectionNotFound
	}

	out := make([]domain.PhraseRecord, 0, len(coll.PhraseIDs))
	for _, pid := range coll.PhraseIDs {
		if rec, ok := e.records[pid]; ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (e *Engine) findCollection(id uuid.UUID) *domain.PhraseCollection {
	for i := range e.collections {
		if e.collections[i].ID == id {
			return &e.collections[i]
		}
	}
	return nil
}

func (e *Engine) saveCollections(ctx context.Context) error {
	if err := e.gw.SaveCollections(ctx, e.collections); err != nil {
		e.logger.Warn("failed to persist collections", slog.Any("error", err))
		return err
	}
	return nil
}
