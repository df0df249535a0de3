package matching

import (
	"reflect"
	"testing"

	"github.com/maniic/jobrec/internal/findwork"
)

func TestNormalizeSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{
			name:   "lower-cases and trims",
			input:  []string{"  Python ", "SQL"},
			expect: []string{"python", "sql"},
		},
		{
			name:   "drops empty entries",
			input:  []string{"go", "   ", ""},
			expect: []string{"go"},
		},
		{
			name:   "collapses duplicates preserving first-seen order",
			input:  []string{"python", "PYTHON", "sql", "python"},
			expect: []string{"python", "sql"},
		},
		{
			name:   "caps at five skills",
			input:  []string{"a", "b", "c", "d", "e", "f", "g"},
			expect: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:   "nil input yields empty set",
			input:  nil,
			expect: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSkills(tt.input); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestBuildRelationWeights(t *testing.T) {
	postings := []*findwork.Posting{
		{Role: "Backend Developer", Description: "Python and more python. Also SQL."},
		{Role: "Frontend Developer", Description: "React only."},
	}

	rel := BuildRelation([]string{"python", "sql"}, postings)

	if got := rel.Weight("python", 0); got != 2 {
		t.Fatalf("expected weight 2 for python, got %d", got)
	}

	if got := rel.Weight("sql", 0); got != 1 {
		t.Fatalf("expected weight 1 for sql, got %d", got)
	}

	if got := rel.Score(0); got != 3 {
		t.Fatalf("expected aggregate score 3, got %d", got)
	}

	if rel.HasMatch(1) {
		t.Fatalf("expected no match for second posting")
	}

	// Zero-weight pairs must not be materialized.
	if rel.Len() != 2 {
		t.Fatalf("expected 2 edges, got %d", rel.Len())
	}
}

func TestBuildRelationUsesSupplementaryText(t *testing.T) {
	postings := []*findwork.Posting{
		{Text: "golang shop", Description: "we build services"},
	}

	rel := BuildRelation([]string{"golang"}, postings)

	if got := rel.Weight("golang", 0); got != 1 {
		t.Fatalf("expected supplementary text to be scored, got weight %d", got)
	}
}

func TestBuildRelationEmptyInputs(t *testing.T) {
	if rel := BuildRelation(nil, nil); rel.Len() != 0 {
		t.Fatalf("expected empty relation, got %d edges", rel.Len())
	}

	rel := BuildRelation([]string{"python"}, nil)
	if rel.Len() != 0 {
		t.Fatalf("expected empty relation without postings, got %d edges", rel.Len())
	}

	rel = BuildRelation(nil, []*findwork.Posting{{Description: "python"}})
	if rel.Len() != 0 || rel.HasMatch(0) {
		t.Fatalf("expected empty relation without skills")
	}
}

func TestBuildRelationSubstringContainment(t *testing.T) {
	// Containment is not word-boundary aware: "go" matches inside
	// "algorithms". Documented behavior, not an accident.
	postings := []*findwork.Posting{
		{Description: "knowledge of algorithms required"},
	}

	rel := BuildRelation([]string{"go"}, postings)

	if got := rel.Weight("go", 0); got != 1 {
		t.Fatalf("expected substring match inside a longer word, got weight %d", got)
	}
}

func TestRelationZeroValueLookups(t *testing.T) {
	var rel *WeightedRelation

	if rel.Weight("python", 0) != 0 || rel.Score(0) != 0 || rel.Len() != 0 {
		t.Fatalf("expected nil relation to behave as empty")
	}
}
