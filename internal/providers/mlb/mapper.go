package mlb

import (
	"fmt"
	"strconv"

	"sports-games-service/internal/domain"
)

// mapStatus is a total mapping from the statsapi status vocabulary into the
// canonical enumeration; anything unrecognized counts as scheduled.
func mapStatus(abstractGameState, codedGameState string) domain.GameStatus {
	switch {
	case codedGameState == "F" || codedGameState == "O" || abstractGameState == "Final":
		return domain.StatusFinal
	case abstractGameState == "Live" || codedGameState == "I":
		return domain.StatusInProgress
	case abstractGameState == "Preview":
		return domain.StatusScheduled
	case codedGameState == "D":
		return domain.StatusPostponed
	case codedGameState == "C":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}

// mapScheduleGame normalizes a schedule entry for a featured-team query.
// Home/away is decided by matching the requested team's upstream id against
// the entry's team ids; the matched side keeps our static team record.
func mapScheduleGame(g scheduleGame, team domain.Team, teamID string) domain.Game {
	isHome := strconv.Itoa(g.Teams.Home.Team.ID) == teamID

	homeTeam := opponentTeam(g.Teams.Home.Team)
	awayTeam := opponentTeam(g.Teams.Away.Team)
	if isHome {
		homeTeam = team
	} else {
		awayTeam = team
	}

	return domain.Game{
		ID:       toGameID(g.GamePk),
		Sport:    domain.SportBaseball,
		StartsAt: g.GameDate,
		Status:   mapStatus(g.Status.AbstractGameState, g.Status.CodedGameState),
		Home:     domain.ScoreSide{Team: homeTeam, Score: g.Teams.Home.Score},
		Away:     domain.ScoreSide{Team: awayTeam, Score: g.Teams.Away.Score},
		Venue:    g.Venue.Name,
		URL:      fmt.Sprintf(gamedayURLFormat, g.GamePk),
	}
}

// mapScoreGame normalizes a schedule entry for a league-wide scores query,
// where both sides are synthesized from upstream data.
func mapScoreGame(g scheduleGame) domain.Game {
	return domain.Game{
		ID:       toGameID(g.GamePk),
		Sport:    domain.SportBaseball,
		StartsAt: g.GameDate,
		Status:   mapStatus(g.Status.AbstractGameState, g.Status.CodedGameState),
		Home:     domain.ScoreSide{Team: opponentTeam(g.Teams.Home.Team), Score: g.Teams.Home.Score},
		Away:     domain.ScoreSide{Team: opponentTeam(g.Teams.Away.Team), Score: g.Teams.Away.Score},
		Venue:    g.Venue.Name,
		URL:      fmt.Sprintf(gamedayURLFormat, g.GamePk),
	}
}

// opponentTeam synthesizes a Team for a club outside the featured registry.
func opponentTeam(t upstreamTeam) domain.Team {
	short := t.TeamName
	if short == "" {
		short = t.Name
	}
	id := strconv.Itoa(t.ID)
	return domain.Team{
		ID:        idPrefix + id,
		Name:      t.Name,
		ShortName: short,
		Sport:     domain.SportBaseball,
		League:    "MLB",
		SourceIDs: map[string]string{sourceKey: id},
	}
}

func toGameID(gamePk int) string {
	return idPrefix + strconv.Itoa(gamePk)
}
