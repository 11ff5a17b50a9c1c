// Package openalex provides a client for the OpenAlex scholarly works API.
// It fetches author profiles, recent publications and frequent collaborators
// used by the professor research endpoints.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/bucourseplanner/backend-go/internal/errors"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// DefaultBaseURL is the public OpenAlex API endpoint.
const DefaultBaseURL = "https://api.openalex.org"

// Author is the raw OpenAlex author record. Fields are passed through to
// clients unchanged, so the payload stays a generic map.
type Author map[string]any

// Work is a single OpenAlex publication record.
type Work map[string]any

// Coauthor is a frequent collaborator aggregated from recent works.
type Coauthor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Count        int      `json:"count"`
	Institutions []string `json:"institutions"`
}

// Options configures a Client.
type Options struct {
	BaseURL string        // Defaults to DefaultBaseURL
	Timeout time.Duration // Per-request timeout
	Mailto  string        // Contact email for the OpenAlex polite pool (optional)
	Metrics *metrics.Metrics
}

// Client talks to the OpenAlex API.
type Client struct {
	baseURL    string
	mailto     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewClient creates an OpenAlex API client.
func NewClient(opts Options, log *logger.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		mailto:     opts.Mailto,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    opts.Metrics,
		logger:     log.WithModule("openalex"),
	}
}

// NormalizeID extracts the bare author ID from a full OpenAlex URL.
// "https://openalex.org/A5023147820" and "A5023147820" both yield "A5023147820".
func NormalizeID(id string) string {
	if strings.Contains(id, "openalex.org") {
		parts := strings.Split(id, "/")
		return parts[len(parts)-1]
	}
	return id
}

// Author fetches an author profile by OpenAlex ID.
func (c *Client) Author(ctx context.Context, id string) (Author, error) {
	var author Author
	endpoint := fmt.Sprintf("%s/authors/%s", c.baseURL, url.PathEscape(NormalizeID(id)))
	if err := c.getJSON(ctx, "authors", endpoint, nil, &author); err != nil {
		return nil, err
	}
	return author, nil
}

// Works fetches an author's most recent publications, newest first.
func (c *Client) Works(ctx context.Context, id string, limit int) ([]Work, error) {
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("filter", "author.id:"+NormalizeID(id))
	params.Set("sort", "publication_date:desc")
	params.Set("per-page", strconv.Itoa(limit))

	var payload struct {
		Results []Work `json:"results"`
	}
	if err := c.getJSON(ctx, "works", c.baseURL+"/works", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Coauthors aggregates an author's frequent collaborators from their 50 most
// recent works, ranked by shared publication count.
func (c *Client) Coauthors(ctx context.Context, id string, limit int) ([]Coauthor, error) {
	if limit <= 0 {
		limit = 10
	}

	works, err := c.Works(ctx, id, 50)
	if err != nil {
		return nil, err
	}

	selfID := NormalizeID(id)
	counts := make(map[string]*Coauthor)
	order := []string{}

	for _, work := range works {
		authorships, _ := work["authorships"].([]any)
		for _, raw := range authorships {
			authorship, _ := raw.(map[string]any)
			author, _ := authorship["author"].(map[string]any)
			authorID, _ := author["id"].(string)

			if authorID == "" || strings.Contains(authorID, selfID) {
				continue
			}

			entry, ok := counts[authorID]
			if !ok {
				name, _ := author["display_name"].(string)
				if name == "" {
					name = "Unknown"
				}
				entry = &Coauthor{ID: authorID, Name: name, Institutions: []string{}}
				counts[authorID] = entry
				order = append(order, authorID)
			}
			entry.Count++

			if institutions, _ := authorship["institutions"].([]any); len(institutions) > 0 {
				inst, _ := institutions[0].(map[string]any)
				if name, _ := inst["display_name"].(string); name != "" && !slices.Contains(entry.Institutions, name) {
					entry.Institutions = append(entry.Institutions, name)
				}
			}
		}
	}

	result := make([]Coauthor, 0, len(counts))
	for _, authorID := range order {
		result = append(result, *counts[authorID])
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, params url.Values, out any) error {
	start := time.Now()

	if c.mailto != "" {
		if params == nil {
			params = url.Values{}
		}
		params.Set("mailto", c.mailto)
	}
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, "error", start)
		return apperrors.Upstreamf("openalex %s request: %v", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.record(endpoint, "not_found", start)
		return apperrors.NotFoundf("openalex %s: %s", endpoint, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		c.record(endpoint, strconv.Itoa(resp.StatusCode), start)
		return apperrors.Upstreamf("openalex %s: unexpected status %s", endpoint, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(endpoint, "error", start)
		return apperrors.Upstreamf("openalex %s: read body: %v", endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.record(endpoint, "error", start)
		return apperrors.Upstreamf("openalex %s: parse response: %v", endpoint, err)
	}

	c.record(endpoint, "ok", start)
	return nil
}

func (c *Client) record(endpoint, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordOpenAlexRequest(endpoint, status, time.Since(start).Seconds())
	}
}
