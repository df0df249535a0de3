package findwork

import (
	"encoding/json"
	"fmt"
	"os"
)

type Postings struct {
	Items []*Posting
}

// Posting is a single job listing as returned by the Findwork feed.
// Fields missing from the feed decode to their zero values; an
// inconsistent upstream row never fails the search.
type Posting struct {
	ID             string   `json:"id,omitempty"`
	Role           string   `json:"role,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	Location       string   `json:"location,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Remote         bool     `json:"remote,omitempty"`
	Logo           string   `json:"logo,omitempty"`
	URL            string   `json:"url,omitempty"`
	Text           string   `json:"text,omitempty"`
	DatePosted     string   `json:"date_posted,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Source         string   `json:"source,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// SearchText returns the text a posting is scored against: the
// supplementary text field and the raw description concatenated.
func (p *Posting) SearchText() string {
	if p.Text == "" {
		return p.Description
	}

	if p.Description == "" {
		return p.Text
	}

	return p.Text + " " + p.Description
}

// Title renders a short human-readable identity for the posting.
func (p *Posting) Title() string {
	role := p.Role
	if role == "" {
		role = "unknown role"
	}

	company := p.CompanyName
	if company == "" {
		company = "unknown company"
	}

	return fmt.Sprintf("%s at %s", role, company)
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByURL(url string) *Posting {
	for _, posting := range p.Items {
		if posting.URL == url {
			return posting
		}
	}
	return nil
}

// RemoveByIndex removes a posting from the list by index. Order is
// preserved: ranking ties break on fetch order.
func (p *Postings) RemoveByIndex(idx int) {
	p.Items = append(p.Items[:idx], p.Items[idx+1:]...)
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups postings under their company name.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.CompanyName
		if key == "" {
			key = "unknown company"
		}

		report[key] = append(report[key], map[string]string{
			"role":            posting.Role,
			"location":        posting.Location,
			"employment type": posting.EmploymentType,
			"date posted":     posting.DatePosted,
			"url":             posting.URL,
		})
	}
	return report
}
