package filtering

import (
	"github.com/maniic/jobrec/internal/findwork"
)

type duplicatesFilter struct{}

// NewDuplicates creates a filter that drops postings repeating a URL
// already seen in the feed. Findwork aggregates several sources, so the
// same listing can show up more than once.
func NewDuplicates() Filter {
	return &duplicatesFilter{}
}

func (f *duplicatesFilter) Name() string { return "duplicates" }

func (f *duplicatesFilter) Disable(string) {}

func (f *duplicatesFilter) IsEnabled() bool { return true }

func (f *duplicatesFilter) Apply(p *findwork.Postings) (*findwork.Postings, Step, error) {
	initial := p.Len()

	seen := make(map[string]struct{}, initial)
	kept := make([]*findwork.Posting, 0, initial)

	for _, posting := range p.Items {
		if posting.URL != "" {
			if _, ok := seen[posting.URL]; ok {
				continue
			}
			seen[posting.URL] = struct{}{}
		}

		kept = append(kept, posting)
	}

	p.Items = kept

	return p, Step{Initial: initial, Dropped: initial - p.Len(), Left: p.Len()}, nil
}
