// Package commentary looks up recent social posts about a team. It is an
// independent, best-effort enhancement: without credentials or when the
// upstream misbehaves it serves mocked items, and it never returns an error.
package commentary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
)

const (
	defaultBaseURL     = "https://api.x.com/2"
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxResults  = "10"

	sourceLive   = "live"
	sourceMocked = "mocked"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls the commentary search client.
type Config struct {
	BaseURL     string
	BearerToken string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client performs the recent-search lookup.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  httpDoer
	logger      *slog.Logger
	now         func() time.Time
}

// NewClient constructs a commentary client.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:     strings.TrimSuffix(base, "/"),
		bearerToken: cfg.BearerToken,
		httpClient:  doer,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

// Search returns recent commentary for a query. Missing credentials and
// upstream failures both degrade to mocked items.
func (c *Client) Search(ctx context.Context, query string) []domain.CommentaryItem {
	if c.bearerToken == "" {
		return mockedItems(query, c.now())
	}

	items, err := c.search(ctx, query)
	if err != nil {
		logging.Warn(c.logger, "commentary search unavailable, serving mocked items", "query", query, "error", err)
		return mockedItems(query, c.now())
	}
	return items
}

type searchResponse struct {
	Data []tweetResponse `json:"data"`
}

type tweetResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

func (c *Client) search(ctx context.Context, query string) ([]domain.CommentaryItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", defaultMaxResults)
	params.Set("tweet.fields", "created_at,author_id")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tweets/search/recent?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("commentary: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	items := make([]domain.CommentaryItem, 0, len(payload.Data))
	for _, tw := range payload.Data {
		items = append(items, domain.CommentaryItem{
			ID:        tw.ID,
			Text:      tw.Text,
			Author:    tw.AuthorID,
			CreatedAt: tw.CreatedAt,
			URL:       "https://x.com/i/status/" + tw.ID,
			Source:    sourceLive,
		})
	}
	return items, nil
}

func mockedItems(query string, now time.Time) []domain.CommentaryItem {
	created := now.UTC().Format(time.RFC3339)
	return []domain.CommentaryItem{
		{
			ID:        "mock-1",
			Text:      "What a game so far for " + query + "! The energy in the building is unreal.",
			Author:    "sportsfan_demo",
			CreatedAt: created,
			Source:    sourceMocked,
		},
		{
			ID:        "mock-2",
			Text:      query + " fans, this is the matchup we've been waiting for all season.",
			Author:    "beat_writer_demo",
			CreatedAt: created,
			Source:    sourceMocked,
		},
	}
}
