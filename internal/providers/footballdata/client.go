package footballdata

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
	"sports-games-service/internal/providers"
)

// Config controls how the football-data.org client reaches the upstream API.
// An empty APIKey selects unauthenticated access, which the upstream rejects;
// the resulting failures degrade to the fallback path rather than erroring.
type Config struct {
	BaseURL     string
	APIKey      string
	Competition string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client fetches Premier League matches from football-data.org v4 and maps
// them to domain models.
type Client struct {
	baseURL     string
	apiKey      string
	competition string
	httpClient  httpDoer
	logger      *slog.Logger
	now         func() time.Time
}

// NewClient constructs a football-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		apiKey:      cfg.APIKey,
		competition: resolveCompetition(cfg.Competition),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

// Name identifies the adapter for diagnostics.
func (c *Client) Name() string { return providerName }

// TeamIdentifier resolves the team's football-data id, when registered.
func (c *Client) TeamIdentifier(team domain.Team) (string, bool) {
	return team.SourceID(sourceKey)
}

// UpcomingGames fetches the team's matches inside the range. Missing
// identifiers and upstream failures degrade to fallback synthesis, never an
// error; a successful empty result stays empty.
func (c *Client) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	teamID, ok := c.TeamIdentifier(team)
	if !ok {
		return fallbackGames(team, c.now()), nil
	}

	query := url.Values{}
	query.Set("dateFrom", rng.FromDate())
	query.Set("dateTo", rng.ToDate())

	var payload matchesResponse
	path := "/teams/" + url.PathEscape(teamID) + "/matches?" + query.Encode()
	if err := c.getJSON(ctx, path, &payload); err != nil {
		logging.Warn(c.logger, "football-data matches unavailable, serving fallback",
			logging.FieldProvider, providerName, logging.FieldTeam, team.ID, "error", err)
		return fallbackGames(team, c.now()), nil
	}

	games := make([]domain.Game, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		games = append(games, mapMatch(m))
	}
	return games, nil
}

// ScoresByDate fetches the competition's matches for a YYYY-MM-DD date.
func (c *Client) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	query := url.Values{}
	query.Set("dateFrom", date)
	query.Set("dateTo", date)

	var payload matchesResponse
	path := "/competitions/" + url.PathEscape(c.competition) + "/matches?" + query.Encode()
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, providers.Upstream(providerName, "epl-scores-failed", err)
	}

	games := make([]domain.Game, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		games = append(games, mapMatch(m))
	}
	return games, nil
}

// LiveGame is not offered by football-data's match feed.
func (c *Client) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	return domain.Game{}, providers.Unsupported(providerName, "epl-live-not-supported")
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set(authHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("football-data: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
