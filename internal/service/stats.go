package service

import (
	"github.com/sahana-dev/phrasetrack/internal/domain"
)

// TotalPhrases returns the number of registered phrases.
func (e *Engine) TotalPhrases() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.records)
}

// CountByMastery returns the number of phrases at the given mastery level.
func (e *Engine) CountByMastery(level domain.MasteryLevel) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, rec := range e.records {
		if rec.Mastery == level {
			count++
		}
	}
	return count
}

// MasteryBreakdown returns the count of phrases per mastery level, with all
// three levels present even when zero.
func (e *Engine) MasteryBreakdown() map[domain.MasteryLevel]int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.masterySnapshot()
}

// CountByDifficulty returns the number of phrases with the given difficulty.
func (e *Engine) CountByDifficulty(difficulty string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, rec := range e.records {
		if rec.Difficulty == difficulty {
			count++
		}
	}
	return count
}

// CountByCategory returns the number of phrases in the given category.
func (e *Engine) CountByCategory(category string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, rec := range e.records {
		if rec.Category == category {
			count++
		}
	}
	return count
}

// CountByCategoryAndMastery returns the number of phrases in the given
// category at the given mastery level.
func (e *Engine) CountByCategoryAndMastery(category string, level domain.MasteryLevel) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, rec := range e.records {
		if rec.Category == category && rec.Mastery == level {
			count++
		}
	}
	return count
}

// PhrasesByCategory returns the records in the given category, in insertion
// order.
func (e *Engine) PhrasesByCategory(category string) []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.PhraseRecord
	for _, id := range e.order {
		if rec := e.records[id]; rec.Category == category {
			out = append(out, *rec)
		}
	}
	return out
}

// Favorites returns the favorited records in insertion order.
func (e *Engine) Favorites() []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.PhraseRecord
	for _, id := range e.order {
		if rec := e.records[id]; rec.Favorite {
			out = append(out, *rec)
		}
	}
	return out
}

// FavoriteCount returns the number of favorited phrases.
func (e *Engine) FavoriteCount() int {
	return len(e.Favorites())
}

// PhrasesNeedingReview returns phrases that are not yet mastered (new or
// learning), in insertion order. This is the coarse mastery-based view;
// DueForReview is the schedule-based one.
func (e *Engine) PhrasesNeedingReview() []domain.PhraseRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.PhraseRecord
	for _, id := range e.order {
		rec := e.records[id]
		if rec.Mastery == domain.MasteryNew || rec.Mastery == domain.MasteryLearning {
			out = append(out, *rec)
		}
	}
	return out
}
