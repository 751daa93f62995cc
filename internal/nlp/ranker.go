package nlp

import (
	"sort"

	"reflekt/internal/model"
)

// QuestionVector pairs a bank question with its vector in the current space
type QuestionVector struct {
	Question model.Question
	Vector   TermVector
}

// Rank scores every question against the user's aggregate entry vector and
// returns them sorted by score descending. The sort is stable, so equal
// scores keep question-bank order; a degenerate (zero) user vector yields
// all-zero scores in bank order. No theme diversity is enforced.
func Rank(userVec TermVector, questions []QuestionVector) []model.ScoredQuestion {
	scored := make([]model.ScoredQuestion, 0, len(questions))
	for _, qv := range questions {
		scored = append(scored, model.ScoredQuestion{
			Question: qv.Question,
			Score:    CosineSimilarity(userVec, qv.Vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
