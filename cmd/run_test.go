package cmd

import (
	"testing"

	"github.com/maniic/jobrec/internal/findwork"
)

func TestRemovePostingByURL(t *testing.T) {
	postings := &findwork.Postings{
		Items: []*findwork.Posting{
			{Role: "First", URL: "https://findwork.dev/1"},
			{Role: "Second", URL: "https://findwork.dev/2"},
			{Role: "Third", URL: "https://findwork.dev/3"},
		},
	}

	if err := removePostingByURL(postings, "https://findwork.dev/2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if postings.Len() != 2 {
		t.Fatalf("expected 2 postings left, got %d", postings.Len())
	}

	// Remaining postings keep fetch order, the ranking tie-break relies on it.
	if postings.Items[0].Role != "First" || postings.Items[1].Role != "Third" {
		t.Fatalf("expected order to be preserved, got %+v", postings.Items)
	}
}

func TestRemovePostingByURLUnknown(t *testing.T) {
	postings := &findwork.Postings{
		Items: []*findwork.Posting{
			{Role: "First", URL: "https://findwork.dev/1"},
		},
	}

	if err := removePostingByURL(postings, "https://findwork.dev/404"); err == nil {
		t.Fatalf("expected error for unknown url")
	}

	if postings.Len() != 1 {
		t.Fatalf("expected postings to be untouched, got %d", postings.Len())
	}
}
