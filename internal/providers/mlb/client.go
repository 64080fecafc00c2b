package mlb

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

// Config controls how the MLB statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// DemoLive substitutes illustrative live data when the play-by-play
	// feed yields nothing for an in-progress game.
	DemoLive bool
}

// Client fetches games from the MLB stats API and maps them to domain
// models. It also owns the live-feed enrichment for in-progress games.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	demoLive   bool
	now        func() time.Time
}

// NewClient constructs an MLB client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		demoLive:   cfg.DemoLive,
		now:        time.Now,
	}
}

// Name identifies the adapter for diagnostics.
func (c *Client) Name() string { return providerName }

// TeamIdentifier resolves the team's statsapi id, when registered.
func (c *Client) TeamIdentifier(team domain.Team) (string, bool) {
	return team.SourceID(sourceKey)
}

// UpcomingGames fetches the team's schedule inside the range. Missing
// identifiers and upstream failures degrade to fallback synthesis, never an
// error; a successful empty schedule stays empty.
func (c *Client) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	teamID, ok := c.TeamIdentifier(team)
	if !ok {
		return fallbackGames(team, c.now(), c.demoLive), nil
	}

	query := url.Values{}
	query.Set("sportId", "1")
	query.Set("teamId", teamID)
	query.Set("startDate", rng.FromDate())
	query.Set("endDate", rng.ToDate())

	var payload scheduleResponse
	if err := c.getJSON(ctx, "/schedule?"+query.Encode(), &payload); err != nil {
		logging.Warn(c.logger, "mlb schedule unavailable, serving fallback",
			logging.FieldProvider, providerName, logging.FieldTeam, team.ID, "error", err)
		return fallbackGames(team, c.now(), c.demoLive), nil
	}

	games := make([]domain.Game, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			game := mapScheduleGame(g, team, teamID)
			if game.Status == domain.StatusInProgress {
				game.LiveInfo = c.liveInfoOrDemo(ctx, g.GamePk, teamID)
			}
			games = append(games, game)
		}
	}
	return games, nil
}

// ScoresByDate fetches the full league schedule for a YYYY-MM-DD date.
func (c *Client) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	query := url.Values{}
	query.Set("sportId", "1")
	query.Set("date", trimDate(date))

	var payload scheduleResponse
	if err := c.getJSON(ctx, "/schedule?"+query.Encode(), &payload); err != nil {
		return nil, providers.Upstream(providerName, "mlb-scores-failed", err)
	}

	games := make([]domain.Game, 0)
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			games = append(games, mapScoreGame(g))
		}
	}
	return games, nil
}

// LiveGame fetches the boxscore for a single game.
func (c *Client) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	upstreamID := strings.TrimPrefix(gameID, idPrefix)

	var payload boxscoreResponse
	if err := c.getJSON(ctx, "/game/"+url.PathEscape(upstreamID)+"/boxscore", &payload); err != nil {
		return domain.Game{}, providers.Upstream(providerName, "mlb-live-failed", err)
	}

	return domain.Game{
		ID:       gameID,
		Sport:    domain.SportBaseball,
		StartsAt: c.now().UTC().Format(time.RFC3339),
		Status:   domain.StatusInProgress,
		Home: domain.ScoreSide{
			Team:  opponentTeam(payload.Teams.Home.Team),
			Score: payload.Teams.Home.TeamStats.Batting.Runs,
		},
		Away: domain.ScoreSide{
			Team:  opponentTeam(payload.Teams.Away.Team),
			Score: payload.Teams.Away.TeamStats.Batting.Runs,
		},
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mlb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// trimDate reduces an ISO timestamp to its YYYY-MM-DD prefix.
func trimDate(dateISO string) string {
	if len(dateISO) > 10 {
		return dateISO[:10]
	}
	return dateISO
}
