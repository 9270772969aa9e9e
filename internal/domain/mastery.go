package domain

// MasteryLevel is the coarse three-way label tracking how well the learner
// knows a phrase. It is updated alongside, but independently of, the numeric
// scheduling state.
type MasteryLevel string

// Possible mastery levels.
const (
	MasteryNew      MasteryLevel = "new"
	MasteryLearning MasteryLevel = "learning"
	MasteryMastered MasteryLevel = "mastered"
)

// Valid reports whether the level is one of the three known values.
func (m MasteryLevel) Valid() bool {
	switch m {
	case MasteryNew, MasteryLearning, MasteryMastered:
		return true
	default:
		return false
	}
}

// MasteryFromQuality derives a mastery level from a review quality score.
// A score of 4 or 5 marks the phrase mastered, 2 or 3 keeps it in learning,
// and anything below 2 sends it back to new. The mapping has no memory: a
// mastered phrase regresses as soon as a poor score comes in.
func MasteryFromQuality(quality int) MasteryLevel {
	switch {
	case quality >= 4:
		return MasteryMastered
	case quality >= 2:
		return MasteryLearning
	default:
		return MasteryNew
	}
}
