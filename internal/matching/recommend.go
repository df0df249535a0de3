package matching

import (
	"sort"

	"github.com/maniic/jobrec/internal/findwork"
)

// DefaultTopK is the number of recommendations returned when the caller
// does not ask for a specific amount.
const DefaultTopK = 5

// MatchLevel summarizes a posting's aggregate score for display.
type MatchLevel string

const (
	LevelHigh   MatchLevel = "High"
	LevelMedium MatchLevel = "Medium"
	LevelLow    MatchLevel = "Low"
)

// Score thresholds for the match levels. Tunable, as long as the
// High > Medium > Low ordering holds.
const (
	highScore   = 3
	mediumScore = 1
)

// ScoredJob is one ranked recommendation. It references the original
// posting and lives only for the duration of one search.
type ScoredJob struct {
	Posting *findwork.Posting
	Score   int
	Level   MatchLevel
	// NoMatch marks postings where none of the supplied skills were
	// found at all. It is kept as a separate field so renderers never
	// have to infer it from the level's display text.
	NoMatch bool
}

// Recommend scores every posting by summing its edge weights in the
// relation, ranks postings by score descending and returns the first
// topK. Postings with equal scores keep their original fetch order.
// Postings without any skill match stay in the ranking, flagged with
// NoMatch. Degenerate input yields an empty list, never an error.
func Recommend(rel *WeightedRelation, postings []*findwork.Posting, topK int) []*ScoredJob {
	if topK < 0 {
		topK = 0
	}

	scored := make([]*ScoredJob, 0, len(postings))
	for i, posting := range postings {
		score := rel.Score(i)
		scored = append(scored, &ScoredJob{
			Posting: posting,
			Score:   score,
			Level:   classify(score),
			NoMatch: score == 0,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	return scored
}

func classify(score int) MatchLevel {
	switch {
	case score >= highScore:
		return LevelHigh
	case score >= mediumScore:
		return LevelMedium
	default:
		return LevelLow
	}
}
