// Package render prints ranked recommendations to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maniic/jobrec/internal/matching"
)

const noResultsMessage = "Sorry, no jobs found at this time. Try again with different or more general skills."

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // bright blue

	highStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")) // green

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // orange

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // gray

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dim gray
)

type Renderer struct {
	out io.Writer
}

func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Results writes the ranked recommendation list. An empty list renders a
// friendly no-results message instead of nothing.
func (r *Renderer) Results(jobs []*matching.ScoredJob) {
	if len(jobs) == 0 {
		fmt.Fprintln(r.out, noResultsMessage)
		return
	}

	fmt.Fprintln(r.out, headerStyle.Render("Top Recommended Jobs:"))

	for i, job := range jobs {
		fmt.Fprintf(r.out, "%d. %s %s\n", i+1, job.Posting.Title(), label(job))

		if details := postingDetails(job); details != "" {
			fmt.Fprintf(r.out, "   %s\n", detailStyle.Render(details))
		}

		if job.Posting.URL != "" {
			fmt.Fprintf(r.out, "   %s\n", detailStyle.Render(job.Posting.URL))
		}
	}
}

// label renders the match-level tag. The fallback marker takes a
// distinct bracketed form, decided from the NoMatch flag and never from
// the level text.
func label(job *matching.ScoredJob) string {
	if job.NoMatch {
		return lowStyle.Render("[Low Match]")
	}

	text := fmt.Sprintf("(%s Match, score %d)", job.Level, job.Score)

	switch job.Level {
	case matching.LevelHigh:
		return highStyle.Render(text)
	case matching.LevelMedium:
		return mediumStyle.Render(text)
	default:
		return lowStyle.Render(text)
	}
}

func postingDetails(job *matching.ScoredJob) string {
	parts := make([]string, 0, 3)

	if job.Posting.Location != "" {
		parts = append(parts, job.Posting.Location)
	}

	if job.Posting.EmploymentType != "" {
		parts = append(parts, job.Posting.EmploymentType)
	}

	if job.Posting.DatePosted != "" {
		parts = append(parts, "posted "+job.Posting.DatePosted)
	}

	return strings.Join(parts, " | ")
}
