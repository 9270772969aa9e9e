// Package service provides the learning progress engine: one explicit
// object, constructed with an injected persistence gateway, that owns all
// per-phrase scheduling state, streaks, goals, collections and session
// history.
package service

import (
	"errors"
	"fmt"

	"github.com/sahana-dev/phrasetrack/internal/store"
)

// Common engine errors. Callers check them with errors.Is; unknown-id
// errors all wrap store.ErrNotFound.
var (
	// ErrPhraseNotFound indicates the phrase id is not registered with the engine.
	ErrPhraseNotFound = fmt.Errorf("%w: phrase", store.ErrNotFound)

	// ErrGoalNotFound indicates the learning goal id does not exist.
	ErrGoalNotFound = fmt.Errorf("%w: learning goal", store.ErrNotFound)

	// ErrCollectionNotFound indicates the collection id does not exist.
	ErrCollectionNotFound = fmt.Errorf("%w: collection", store.ErrNotFound)

	// ErrReminderNotFound indicates the reminder id does not exist.
	ErrReminderNotFound = fmt.Errorf("%w: reminder", store.ErrNotFound)

	// ErrDuplicatePhrase indicates a phrase id is already registered.
	ErrDuplicatePhrase = errors.New("phrase is already registered")

	// ErrNoActiveSession indicates EndSession was called without a
	// matching StartSession.
	ErrNoActiveSession = errors.New("no active practice session")
)
