// Package annict is a minimal read-only client for the Annict v1 API.
package annict

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mydehq/annictl/internal/episode"
)

const defaultBaseURL = "https://api.annict.com/v1"

// Fixed page sizes; only the first page is ever requested.
const (
	worksPerPage    = 30
	episodesPerPage = 50
)

// Config carries everything the client needs; no ambient globals.
type Config struct {
	Token   string
	BaseURL string        // defaults to the public API when empty
	Timeout time.Duration // transport default when zero
}

// Client issues bearer-authenticated requests against the Annict API.
type Client struct {
	http  *resty.Client
	token string
}

// New builds a client from cfg. The token may be empty, in which case every
// call fails with ErrMissingToken without touching the network.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	c := resty.New().
		SetBaseURL(base).
		SetHeader("Authorization", "Bearer "+cfg.Token)
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}

	return &Client{http: c, token: cfg.Token}
}

// SearchWorks queries /works for titles matching query. Results keep the
// server's season-ascending order. An empty slice with a nil error means the
// search matched nothing, as opposed to a request failure.
func (c *Client) SearchWorks(ctx context.Context, query string) ([]Work, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"filter_title": query,
			"page":         "1",
			"per_page":     strconv.Itoa(worksPerPage),
			"sort_season":  "asc",
		}).
		Get("/works")
	if err != nil {
		return nil, fmt.Errorf("search works: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: errorBody(resp.Body())}
	}

	var out worksResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("parse works response: %w", err)
	}
	return out.Works, nil
}

// ListEpisodes fetches the episode list for a work in the server's
// sort-number order. Each entry's number is resolved from the numeric field
// when present (truncated to an integer), otherwise from the first digit run
// of number_text. Entries that resolve to nothing keep a nil Number.
func (c *Client) ListEpisodes(ctx context.Context, workID int) ([]Listing, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"filter_work_id":   strconv.Itoa(workID),
			"page":             "1",
			"per_page":         strconv.Itoa(episodesPerPage),
			"sort_sort_number": "asc",
		}).
		Get("/episodes")
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: errorBody(resp.Body())}
	}

	var out episodesResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("parse episodes response: %w", err)
	}

	listings := make([]Listing, 0, len(out.Episodes))
	for _, ep := range out.Episodes {
		l := Listing{Title: episode.PlaceholderTitle}
		if ep.Title != nil && *ep.Title != "" {
			l.Title = *ep.Title
		}

		switch {
		case ep.Number != nil && *ep.Number >= 0:
			n := int(*ep.Number)
			l.Number = &n
		case ep.NumberText != nil:
			if n, ok := episode.ExtractNumber(*ep.NumberText); ok {
				l.Number = &n
			}
		}

		listings = append(listings, l)
	}
	return listings, nil
}

// UsableRecords filters listings down to entries with a resolved number and
// sanitizes their titles for filesystem use. Server order is preserved.
func UsableRecords(listings []Listing) []episode.Record {
	var records []episode.Record
	for _, l := range listings {
		if l.Number == nil {
			continue
		}
		records = append(records, episode.Record{
			Number: *l.Number,
			Title:  episode.SanitizeTitle(l.Title),
		})
	}
	return records
}
