package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
	"sports-games-service/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// MaxPages bounds schedule pagination so a runaway upstream cursor
	// cannot stall a request.
	MaxPages int
}

// Client fetches NBA games from balldontlie and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
	maxPages   int
	now        func() time.Time
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		maxPages:   resolveMaxPages(cfg.MaxPages),
		now:        time.Now,
	}
}

// Name identifies the adapter for diagnostics.
func (c *Client) Name() string { return providerName }

// TeamIdentifier resolves the team's balldontlie id, when registered.
func (c *Client) TeamIdentifier(team domain.Team) (string, bool) {
	return team.SourceID(sourceKey)
}

// UpcomingGames fetches the team's games inside the range, paginating until
// the upstream cursor is exhausted. Missing identifiers and upstream
// failures degrade to fallback synthesis, never an error.
func (c *Client) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	teamID, ok := c.TeamIdentifier(team)
	if !ok {
		return fallbackGames(team, c.now()), nil
	}

	games := make([]domain.Game, 0)
	for page := 1; page <= c.maxPages; page++ {
		payload, err := c.fetchGamesPage(ctx, func(q url.Values) {
			q.Set("team_ids[]", teamID)
			q.Set("start_date", rng.FromDate())
			q.Set("end_date", rng.ToDate())
		}, page)
		if err != nil {
			logging.Warn(c.logger, "balldontlie games unavailable, serving fallback",
				logging.FieldProvider, providerName, logging.FieldTeam, team.ID, "error", err)
			return fallbackGames(team, c.now()), nil
		}
		for _, g := range payload.Data {
			games = append(games, mapGame(g))
		}
		if page >= payload.Meta.TotalPages {
			break
		}
	}
	return games, nil
}

// ScoresByDate fetches the league slate for a YYYY-MM-DD date.
func (c *Client) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	games := make([]domain.Game, 0)
	for page := 1; page <= c.maxPages; page++ {
		payload, err := c.fetchGamesPage(ctx, func(q url.Values) {
			q.Set("dates[]", date)
		}, page)
		if err != nil {
			return nil, providers.Upstream(providerName, "nba-scores-failed", err)
		}
		for _, g := range payload.Data {
			games = append(games, mapGame(g))
		}
		if page >= payload.Meta.TotalPages {
			break
		}
	}
	return games, nil
}

// LiveGame is not offered by balldontlie's free tier.
func (c *Client) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	return domain.Game{}, providers.Unsupported(providerName, "nba-live-not-supported")
}

func (c *Client) fetchGamesPage(ctx context.Context, apply func(url.Values), page int) (gamesResponse, error) {
	query := url.Values{}
	apply(query)
	query.Set("per_page", strconv.Itoa(defaultPerPage))
	query.Set("page", strconv.Itoa(page))

	var payload gamesResponse
	if err := c.getJSON(ctx, "/games?"+query.Encode(), &payload); err != nil {
		return gamesResponse{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("balldontlie: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
