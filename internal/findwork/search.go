package findwork

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/maniic/jobrec/internal/logger"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	SearchPath = "/jobs/"

	// Description previews are shortened to this length in debug logs.
	previewLength = 120
)

type SearchParams struct {
	Search   string `yaml:"search"`
	Location string `yaml:"location"`
	Remote   *bool  `yaml:"remote"`
	SortBy   string `yaml:"sort_by" mapstructure:"sort_by"`
	// Limit bounds how many postings are collected across pages.
	// Zero means up to one full page of 100 postings.
	Limit int `yaml:"limit"`
}

func (c *Client) search(params *SearchParams) (*Postings, error) {
	var postings []*Posting

	if params == nil {
		params = &SearchParams{}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = perPage
	}

	q := buildParams(params)
	apiURLSearch := fmt.Sprintf("%s%s", c.APIURL, SearchPath)

	items, err := c.getItems(apiURLSearch, q, limit)
	if err != nil {
		return nil, err
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &postings,
		TagName:  "json",
	}
	decoder, _ := mapstructure.NewDecoder(cfg)
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decoding postings: %w", err)
	}

	for _, posting := range postings {
		c.logger.Debug("fetched posting",
			zap.String("title", posting.Title()),
			zap.String("preview", logger.TruncateForLog(posting.SearchText(), previewLength)),
		)
	}

	return &Postings{
		Items: postings,
	}, nil
}

func buildParams(params *SearchParams) url.Values {
	q := url.Values{}

	if params.Search != "" {
		q.Set("search", params.Search)
	}

	if params.Location != "" {
		q.Set("location", params.Location)
	}

	if params.Remote != nil {
		q.Set("remote", strconv.FormatBool(*params.Remote))
	}

	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
	}

	return q
}
