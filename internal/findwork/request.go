package findwork

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip, deflate, br"
)

// ListResponse is one page of the Findwork jobs feed. Next and Previous
// carry full cursor URLs to the adjacent pages.
type ListResponse struct {
	Count    int
	Next     string
	Previous string
	Results  []Item
}

type Item interface{}

// getItems makes GET requests to the Findwork API and follows the next
// cursor until limit items are collected or pages run out.
func (c *Client) getItems(reqURL string, q url.Values, limit int) ([]Item, error) {
	var items []Item

	next := reqURL
	query := q.Encode()

	for next != "" && len(items) < limit {
		req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		req = c.setHeaders(req)
		// Additional headers. For GET requests only
		req.Header.Set("Content-Type", contentType)

		// The next cursor URL already carries its own query.
		if query != "" {
			req.URL.RawQuery = query
			query = ""
		}

		resp, err := c.request(req)
		if err != nil {
			return nil, err
		}

		response, err := c.parseListResponse(resp)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("got response from findwork.dev",
			zap.Int("total", response.Count),
			zap.Int("page items", len(response.Results)),
		)

		items = append(items, response.Results...)

		// A cursor that stops yielding items ends the walk, whatever
		// next says.
		if len(response.Results) == 0 {
			break
		}

		if response.Next != "" && len(items) < limit {
			c.logger.Debug("additional request needed", zap.String("reason", fmt.Sprintf(
				"collected items (%d) < requested limit (%d)", len(items), limit),
			))
		}

		next = response.Next
	}

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (c *Client) parseListResponse(resp *http.Response) (*ListResponse, error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		body = gzipReader
	}

	var response *ListResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	// Findwork uses the Token scheme rather than Bearer.
	req.Header.Set("Authorization", fmt.Sprintf("Token %s", c.token))
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)

	return req
}
