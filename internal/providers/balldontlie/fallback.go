package balldontlie

import (
	"time"

	"sports-games-service/internal/domain"
)

// fallbackOpponents pairs each featured team with a plausible opponent for
// the synthesized game shown when the upstream is unreachable.
var fallbackOpponents = map[string]domain.Team{
	"nba-lakers": {
		ID:        "nba-opponent-gsw",
		Name:      "Golden State Warriors",
		ShortName: "GSW",
		Sport:     domain.SportBasketball,
		League:    "NBA",
	},
}

var fallbackVenues = map[string]string{
	"nba-lakers": "Crypto.com Arena",
}

func fallbackGames(team domain.Team, now time.Time) []domain.Game {
	opponent, ok := fallbackOpponents[team.ID]
	if !ok {
		opponent = domain.Team{
			ID:        "nba-opponent-" + team.ID,
			Name:      "NBA Opponent",
			ShortName: "OPP",
			Sport:     domain.SportBasketball,
			League:    "NBA",
		}
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 19, 30, 0, 0, now.Location())
	if start.Before(now) {
		start = start.Add(24 * time.Hour)
	}
	return []domain.Game{{
		ID:       "nba-fallback-" + team.ID,
		Sport:    domain.SportBasketball,
		StartsAt: start.Format(time.RFC3339),
		Status:   domain.StatusScheduled,
		Home:     domain.ScoreSide{Team: team},
		Away:     domain.ScoreSide{Team: opponent},
		Venue:    fallbackVenues[team.ID],
	}}
}
