package providers

import (
	"context"

	"sports-games-service/internal/domain"
)

// SportsProvider is the capability contract implemented by each league
// adapter. Implementations never panic past their boundary; failures surface
// as typed *Error values, except for UpcomingGames which degrades to a
// synthesized fallback payload on missing identifiers or upstream failure.
type SportsProvider interface {
	// Name identifies the adapter for diagnostics.
	Name() string

	// UpcomingGames fetches the team's games inside the inclusive range.
	// It never returns an error: a missing upstream identifier or a failed
	// upstream call yields a synthesized fallback list instead. A successful
	// upstream call with zero games yields an empty list; the caller decides
	// whether to widen the range.
	UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error)

	// ScoresByDate fetches all of the league's games for a YYYY-MM-DD date.
	ScoresByDate(ctx context.Context, date string) ([]domain.Game, error)

	// LiveGame fetches a single game by its local id ("mlb-746789").
	// Adapters without a live source return an unsupported-operation error.
	LiveGame(ctx context.Context, gameID string) (domain.Game, error)

	// TeamIdentifier resolves the team's native id on this adapter's
	// upstream, when one is registered.
	TeamIdentifier(team domain.Team) (string, bool)
}
