// Package games orchestrates the per-league adapters behind one façade:
// registry lookup, adapter dispatch by sport, date-range widening when a
// team has nothing today, and the baseball opponent stitch.
package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/metrics"
	"sports-games-service/internal/providers"
	"sports-games-service/internal/teams"
)

// Boundary errors. These are the only conditions that should surface as a
// non-success HTTP response; upstream flakiness is absorbed below.
var (
	ErrUnknownTeam   = errors.New("unknown team")
	ErrUnknownLeague = errors.New("unknown league")
)

const defaultLookaheadDays = 30

// StitchSource is the secondary scoreboard consulted to resolve TBD
// opponents on baseball schedules.
type StitchSource interface {
	EventsByDate(ctx context.Context, date string) ([]domain.Game, error)
}

// Config wires the orchestrator's collaborators.
type Config struct {
	// Providers maps each sport to its adapter.
	Providers map[domain.Sport]providers.SportsProvider
	// Leagues maps the request-facing league keys (mlb, nba, epl, nfl)
	// to the same adapters for scores and live-game dispatch.
	Leagues map[string]providers.SportsProvider
	Stitch  StitchSource
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// LookaheadDays widens the search window when today is empty.
	LookaheadDays int
}

// Service answers the outward-facing game queries.
type Service struct {
	providers     map[domain.Sport]providers.SportsProvider
	leagues       map[string]providers.SportsProvider
	stitch        StitchSource
	logger        *slog.Logger
	metrics       *metrics.Recorder
	lookaheadDays int
	now           func() time.Time
}

// NewService constructs the orchestrator.
func NewService(cfg Config) *Service {
	lookahead := cfg.LookaheadDays
	if lookahead <= 0 {
		lookahead = defaultLookaheadDays
	}
	return &Service{
		providers:     cfg.Providers,
		leagues:       cfg.Leagues,
		stitch:        cfg.Stitch,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		lookaheadDays: lookahead,
		now:           time.Now,
	}
}

// Teams lists the featured registry.
func (s *Service) Teams() []domain.Team {
	return teams.Featured()
}

// GamesForTeam resolves the team, asks its adapter for today's games, widens
// the window once when today is empty, and runs the baseball opponent stitch
// on the result.
func (s *Service) GamesForTeam(ctx context.Context, teamID string) ([]domain.Game, error) {
	team, ok := teams.ByID(teamID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	provider, ok := s.providers[team.Sport]
	if !ok {
		return nil, fmt.Errorf("no adapter for sport %s", team.Sport)
	}

	now := s.now()
	games, err := s.fetchUpcoming(ctx, provider, team, domain.DayRange(now))
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		games, err = s.fetchUpcoming(ctx, provider, team, domain.LookaheadRange(now, s.lookaheadDays))
		if err != nil {
			return nil, err
		}
	}

	if team.Sport == domain.SportBaseball {
		s.stitchOpponents(ctx, team, games)
	}
	return games, nil
}

// ScoresForDate returns the full league slate for a YYYY-MM-DD date.
func (s *Service) ScoresForDate(ctx context.Context, league, date string) ([]domain.Game, error) {
	provider, ok := s.leagues[league]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLeague, league)
	}

	started := s.now()
	games, err := provider.ScoresByDate(ctx, date)
	s.metrics.RecordProviderAttempt(provider.Name(), time.Since(started), err)
	return games, err
}

// LiveGame returns live detail for one game in a league.
func (s *Service) LiveGame(ctx context.Context, league, gameID string) (domain.Game, error) {
	provider, ok := s.leagues[league]
	if !ok {
		return domain.Game{}, fmt.Errorf("%w: %s", ErrUnknownLeague, league)
	}

	started := s.now()
	game, err := provider.LiveGame(ctx, gameID)
	s.metrics.RecordProviderAttempt(provider.Name(), time.Since(started), err)
	return game, err
}

func (s *Service) fetchUpcoming(ctx context.Context, provider providers.SportsProvider, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	started := s.now()
	games, err := provider.UpcomingGames(ctx, team, rng)
	s.metrics.RecordProviderAttempt(provider.Name(), time.Since(started), err)
	if err == nil && containsSynthesized(games) {
		s.metrics.RecordFallback(provider.Name())
	}
	return games, err
}

// containsSynthesized spots fallback and demo payloads by their synthetic
// ids, which adapters keep distinguishable from upstream-derived ids.
func containsSynthesized(games []domain.Game) bool {
	for _, g := range games {
		if strings.Contains(g.ID, "-fallback") || strings.Contains(g.ID, "-demo") {
			return true
		}
	}
	return false
}
