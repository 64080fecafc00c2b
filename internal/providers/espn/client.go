package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
	"sports-games-service/internal/providers"
)

// Config controls how a scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches games from the public multi-sport scoreboard API. The same
// client serves two roles behind different constructors: the NFL adapter and
// the secondary baseball source the opponent stitch consults.
type Client struct {
	name       string
	leaguePath string
	sport      domain.Sport
	league     string
	idPrefix   string
	codePrefix string
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// NewNFL constructs the NFL scoreboard adapter.
func NewNFL(cfg Config) *Client {
	return newClient(cfg, "espn-nfl", "football/nfl", domain.SportFootball, "NFL", "nfl-", "nfl")
}

// NewMLBScoreboard constructs the secondary baseball scoreboard source used
// to resolve TBD opponents.
func NewMLBScoreboard(cfg Config) *Client {
	return newClient(cfg, "espn-mlb", "baseball/mlb", domain.SportBaseball, "MLB", "espn-", "espn-mlb")
}

func newClient(cfg Config, name, leaguePath string, sport domain.Sport, league, idPrefix, codePrefix string) *Client {
	return &Client{
		name:       name,
		leaguePath: leaguePath,
		sport:      sport,
		league:     league,
		idPrefix:   idPrefix,
		codePrefix: codePrefix,
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// Name identifies the adapter for diagnostics.
func (c *Client) Name() string { return c.name }

// TeamIdentifier resolves the team's scoreboard id, when registered.
func (c *Client) TeamIdentifier(team domain.Team) (string, bool) {
	return team.SourceID(sourceKey)
}

// UpcomingGames walks the range one scoreboard day at a time and filters the
// full-league slate down to the requested team. Days that fail upstream are
// skipped; when every day fails (or the team has no scoreboard id) the
// result degrades to fallback synthesis, never an error.
func (c *Client) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	if _, ok := c.TeamIdentifier(team); !ok {
		return c.fallbackGames(team, c.now()), nil
	}

	games := make([]domain.Game, 0)
	days := rng.Days()
	failed := 0
	for _, day := range days {
		date := day.Format("2006-01-02")
		dayGames, err := c.EventsByDate(ctx, date)
		if err != nil {
			failed++
			logging.Warn(c.logger, "scoreboard day unavailable, skipping",
				logging.FieldProvider, c.name, logging.FieldTeam, team.ID, "date", date, "error", err)
			continue
		}
		for _, g := range dayGames {
			if matchesTeam(team, g) {
				games = append(games, g)
			}
		}
	}
	if len(days) > 0 && failed == len(days) {
		return c.fallbackGames(team, c.now()), nil
	}
	return games, nil
}

// ScoresByDate fetches the full-league slate for a YYYY-MM-DD date.
func (c *Client) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	games, err := c.EventsByDate(ctx, date)
	if err != nil {
		return nil, providers.Upstream(c.name, c.codePrefix+"-scores-failed", err)
	}
	return games, nil
}

// LiveGame is not offered by the scoreboard feed.
func (c *Client) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	return domain.Game{}, providers.Unsupported(c.name, c.codePrefix+"-live-not-supported")
}

// EventsByDate fetches and maps every scoreboard event for one calendar day.
// The opponent stitch consumes this directly.
func (c *Client) EventsByDate(ctx context.Context, date string) ([]domain.Game, error) {
	var payload scoreboardResponse
	path := "/" + c.leaguePath + "/scoreboard?dates=" + scoreboardDate(date)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		games = append(games, c.mapEvent(ev))
	}
	return games, nil
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
		return fmt.Errorf("scoreboard: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
