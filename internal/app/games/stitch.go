package games

import (
	"context"
	"strings"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
)

// placeholderShortName is what the baseball schedule shows for an opponent
// that is not decided yet.
const placeholderShortName = "TBD"

// stitchOpponents replaces TBD placeholder sides in place with a team built
// from the secondary scoreboard's event for the same day. Best effort only;
// every failure is swallowed and the placeholder stays.
func (s *Service) stitchOpponents(ctx context.Context, team domain.Team, games []domain.Game) {
	if s.stitch == nil {
		return
	}
	for i := range games {
		side := placeholderSide(&games[i])
		if side == nil {
			continue
		}
		resolved := s.resolveOpponent(ctx, team, games[i])
		s.metrics.RecordStitch(resolved != nil)
		if resolved != nil {
			*side = *resolved
		}
	}
}

func (s *Service) resolveOpponent(ctx context.Context, team domain.Team, game domain.Game) *domain.Team {
	events, err := s.stitch.EventsByDate(ctx, gameDate(game, s.now().Format("2006-01-02")))
	if err != nil {
		logging.Warn(s.logger, "opponent stitch lookup failed",
			logging.FieldTeam, team.ID, "game", game.ID, "error", err)
		return nil
	}

	for _, ev := range events {
		if opponent, ok := opponentInEvent(ev, team.ShortName); ok {
			return &opponent
		}
	}
	return nil
}

func placeholderSide(game *domain.Game) *domain.Team {
	if game.Home.Team.ShortName == placeholderShortName {
		return &game.Home.Team
	}
	if game.Away.Team.ShortName == placeholderShortName {
		return &game.Away.Team
	}
	return nil
}

// opponentInEvent returns the side facing the requested team in the first
// event whose competitors fuzzy-match the team's short name.
func opponentInEvent(ev domain.Game, shortName string) (domain.Team, bool) {
	if nameMatches(ev.Home.Team, shortName) {
		return ev.Away.Team, true
	}
	if nameMatches(ev.Away.Team, shortName) {
		return ev.Home.Team, true
	}
	return domain.Team{}, false
}

func nameMatches(side domain.Team, shortName string) bool {
	if shortName == "" {
		return false
	}
	needle := strings.ToLower(shortName)
	return strings.Contains(strings.ToLower(side.Name), needle) ||
		strings.Contains(strings.ToLower(side.ShortName), needle)
}

// gameDate extracts the YYYY-MM-DD day of a game's start, falling back to
// the supplied default for synthetic timestamps.
func gameDate(game domain.Game, fallback string) string {
	if len(game.StartsAt) >= 10 {
		return game.StartsAt[:10]
	}
	return fallback
}
