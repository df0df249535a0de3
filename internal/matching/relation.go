package matching

import (
	"strings"

	"github.com/maniic/jobrec/internal/findwork"
)

// MaxSkills bounds how many skills are considered per search.
const MaxSkills = 5

// NormalizeSkills lower-cases and trims raw skill input, drops empty
// entries and collapses duplicates, preserving first-seen order. The
// result is capped at MaxSkills.
func NormalizeSkills(raw []string) []string {
	skills := make([]string, 0, MaxSkills)
	seen := make(map[string]struct{}, MaxSkills)

	for _, skill := range raw {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}

		if _, ok := seen[skill]; ok {
			continue
		}

		seen[skill] = struct{}{}
		skills = append(skills, skill)

		if len(skills) == MaxSkills {
			break
		}
	}

	return skills
}

type edge struct {
	skill string
	job   int
}

// WeightedRelation is a sparse mapping from (skill, posting index) pairs
// to the number of times the skill occurs in the posting's text. Pairs
// without an entry have weight zero. A relation is built fresh for every
// search and holds no cross-request state.
type WeightedRelation struct {
	weights map[edge]int
	scores  map[int]int
}

// BuildRelation counts non-overlapping occurrences of every skill in
// every posting's normalized search text and records pairs with at least
// one occurrence. Skills are expected to be normalized already. Empty
// inputs yield an empty relation, not an error.
//
// Counting is plain substring containment, so a short skill can match
// inside an unrelated word ("go" inside "algorithm"). That mirrors the
// search text the postings come from and is accepted as a limitation.
func BuildRelation(skills []string, postings []*findwork.Posting) *WeightedRelation {
	rel := &WeightedRelation{
		weights: make(map[edge]int),
		scores:  make(map[int]int),
	}

	for i, posting := range postings {
		content := strings.ToLower(posting.SearchText())

		for _, skill := range skills {
			if count := strings.Count(content, skill); count > 0 {
				rel.weights[edge{skill: skill, job: i}] = count
				rel.scores[i] += count
			}
		}
	}

	return rel
}

// Weight returns the occurrence count recorded for the given skill and
// posting index. Unknown pairs return zero.
func (r *WeightedRelation) Weight(skill string, job int) int {
	if r == nil {
		return 0
	}

	return r.weights[edge{skill: skill, job: job}]
}

// Score returns the aggregate score of a posting: the sum of the weights
// of all its incident edges.
func (r *WeightedRelation) Score(job int) int {
	if r == nil {
		return 0
	}

	return r.scores[job]
}

// HasMatch reports whether at least one skill was found in the posting.
func (r *WeightedRelation) HasMatch(job int) bool {
	return r.Score(job) > 0
}

// Len returns the number of materialized edges.
func (r *WeightedRelation) Len() int {
	if r == nil {
		return 0
	}

	return len(r.weights)
}
