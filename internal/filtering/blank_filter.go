package filtering

import (
	"github.com/maniic/jobrec/internal/findwork"
)

type blankFilter struct {
	disabled bool
	reason   string
}

// NewBlank creates a filter that drops postings carrying neither a role
// nor any description text. Such rows cannot be scored or displayed;
// postings with only some fields missing are kept as-is.
func NewBlank() Filter {
	return &blankFilter{}
}

func (f *blankFilter) Name() string { return "blank" }

func (f *blankFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *blankFilter) IsEnabled() bool { return !f.disabled }

func (f *blankFilter) Apply(p *findwork.Postings) (*findwork.Postings, Step, error) {
	initial := p.Len()

	kept := make([]*findwork.Posting, 0, initial)
	for _, posting := range p.Items {
		if posting.Role == "" && posting.SearchText() == "" {
			continue
		}
		kept = append(kept, posting)
	}

	p.Items = kept

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}
