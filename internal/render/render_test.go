package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/maniic/jobrec/internal/findwork"
	"github.com/maniic/jobrec/internal/matching"
)

func TestResultsEmptyList(t *testing.T) {
	var buf bytes.Buffer

	New(&buf).Results(nil)

	if !strings.Contains(buf.String(), "no jobs found") {
		t.Fatalf("expected no-results message, got %q", buf.String())
	}
}

func TestResultsRendersRankedList(t *testing.T) {
	var buf bytes.Buffer

	jobs := []*matching.ScoredJob{
		{
			Posting: &findwork.Posting{
				Role:        "Go Developer",
				CompanyName: "Acme",
				Location:    "Remote",
				URL:         "https://findwork.dev/1",
			},
			Score: 4,
			Level: matching.LevelHigh,
		},
		{
			Posting: &findwork.Posting{Role: "Analyst", CompanyName: "Globex"},
			Score:   1,
			Level:   matching.LevelMedium,
		},
	}

	New(&buf).Results(jobs)
	out := buf.String()

	if !strings.Contains(out, "Top Recommended Jobs:") {
		t.Fatalf("expected header, got %q", out)
	}

	if !strings.Contains(out, "1. Go Developer at Acme") {
		t.Fatalf("expected numbered first entry, got %q", out)
	}

	if !strings.Contains(out, "High Match, score 4") {
		t.Fatalf("expected level and score, got %q", out)
	}

	if !strings.Contains(out, "Remote") || !strings.Contains(out, "https://findwork.dev/1") {
		t.Fatalf("expected posting details, got %q", out)
	}

	if !strings.Contains(out, "2. Analyst at Globex") {
		t.Fatalf("expected second entry, got %q", out)
	}
}

func TestResultsRendersFallbackMarker(t *testing.T) {
	var buf bytes.Buffer

	jobs := []*matching.ScoredJob{
		{
			Posting: &findwork.Posting{Role: "Analyst", CompanyName: "Globex"},
			Score:   0,
			Level:   matching.LevelLow,
			NoMatch: true,
		},
	}

	New(&buf).Results(jobs)
	out := buf.String()

	if !strings.Contains(out, "[Low Match]") {
		t.Fatalf("expected the fallback marker tag, got %q", out)
	}
}
