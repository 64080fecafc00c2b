package espn

import (
	"strconv"
	"strings"

	"sports-games-service/internal/domain"
)

func (c *Client) mapEvent(ev eventResponse) domain.Game {
	status := mapStatus(ev.Status.Type)
	game := domain.Game{
		ID:       c.idPrefix + ev.ID,
		Sport:    c.sport,
		StartsAt: ev.Date,
		Status:   status,
	}
	if len(ev.Competitions) == 0 {
		return game
	}

	comp := ev.Competitions[0]
	game.Venue = comp.Venue.FullName
	for _, competitor := range comp.Competitors {
		side := domain.ScoreSide{Team: c.mapTeam(competitor.Team)}
		// Scoreboard scores are strings and read "0" before kickoff;
		// only started games carry a concrete score.
		if status != domain.StatusScheduled && status != domain.StatusPostponed && status != domain.StatusCanceled {
			if score, err := strconv.Atoi(competitor.Score); err == nil {
				side.Score = domain.IntPtr(score)
			}
		}
		switch competitor.HomeAway {
		case "home":
			game.Home = side
		case "away":
			game.Away = side
		}
	}
	return game
}

func (c *Client) mapTeam(t upstreamTeam) domain.Team {
	return domain.Team{
		ID:        c.idPrefix + t.ID,
		Name:      t.DisplayName,
		ShortName: t.Abbreviation,
		Sport:     c.sport,
		League:    c.league,
		SourceIDs: map[string]string{sourceKey: t.ID},
	}
}

// mapStatus is total over the scoreboard status vocabulary. Postponements
// and cancellations arrive as pre-state events with a qualifying type name.
func mapStatus(st eventStatusType) domain.GameStatus {
	switch strings.ToUpper(st.Name) {
	case "STATUS_POSTPONED":
		return domain.StatusPostponed
	case "STATUS_CANCELED", "STATUS_CANCELLED":
		return domain.StatusCanceled
	}
	switch st.State {
	case stateIn:
		return domain.StatusInProgress
	case statePost:
		return domain.StatusFinal
	case statePre:
		return domain.StatusScheduled
	default:
		return domain.StatusScheduled
	}
}

// matchesTeam reports whether either side of the game fuzzy-matches the
// requested team. The scoreboard has no per-team query, so filtering happens
// client side with a case-insensitive substring check in both directions.
func matchesTeam(team domain.Team, game domain.Game) bool {
	for _, side := range []domain.Team{game.Home.Team, game.Away.Team} {
		if fuzzyMatch(team.Name, side.Name) || fuzzyMatch(team.Name, side.ShortName) ||
			fuzzyMatch(team.ShortName, side.Name) || fuzzyMatch(team.ShortName, side.ShortName) {
			return true
		}
	}
	return false
}

func fuzzyMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
