package mlb

import (
	"time"

	"sports-games-service/internal/domain"
)

// fallbackGames synthesizes a placeholder schedule when upstream data is
// unavailable or the team carries no statsapi identifier. With demoLive set
// it produces an illustrative in-progress game so the live UI path stays
// exercised; otherwise a plain scheduled game against a TBD opponent.
func fallbackGames(team domain.Team, now time.Time, demoLive bool) []domain.Game {
	opponent := domain.Team{
		ID:        "mlb-opponent",
		Name:      "TBD",
		ShortName: "TBD",
		Sport:     domain.SportBaseball,
		League:    "MLB",
	}

	if demoLive {
		return []domain.Game{{
			ID:       "mlb-demo-live",
			Sport:    domain.SportBaseball,
			StartsAt: now.Add(-2 * time.Hour).Format(time.RFC3339),
			Status:   domain.StatusInProgress,
			Home:     domain.ScoreSide{Team: team, Score: domain.IntPtr(3)},
			Away:     domain.ScoreSide{Team: opponent, Score: domain.IntPtr(2)},
			Venue:    "Dodger Stadium",
			URL:      "https://www.mlb.com/gameday/demo",
			LiveInfo: demoLiveInfo(),
		}}
	}

	firstPitch := time.Date(now.Year(), now.Month(), now.Day(), 19, 10, 0, 0, now.Location())
	return []domain.Game{{
		ID:       "mlb-fallback",
		Sport:    domain.SportBaseball,
		StartsAt: firstPitch.Format(time.RFC3339),
		Status:   domain.StatusScheduled,
		Home:     domain.ScoreSide{Team: team},
		Away:     domain.ScoreSide{Team: opponent},
		Venue:    "Dodger Stadium",
	}}
}

// demoLiveInfo is the fixed illustrative snapshot substituted when the live
// feed has no usable data.
func demoLiveInfo() *domain.LiveGameInfo {
	return &domain.LiveGameInfo{
		CurrentPitcher: &domain.LivePlayer{Name: "Walker Buehler", Team: "Home"},
		CurrentBatter: &domain.LiveBatter{
			Name:    "Mookie Betts",
			Team:    "Away",
			Inning:  "7",
			Outs:    1,
			Balls:   2,
			Strikes: 1,
		},
		Inning:      "7",
		InningState: "Bottom",
	}
}
