package balldontlie

import (
	"strconv"
	"strings"

	"sports-games-service/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	status := mapStatus(g.Status)
	game := domain.Game{
		ID:       idPrefix + strconv.Itoa(g.ID),
		Sport:    domain.SportBasketball,
		StartsAt: g.Date,
		Status:   status,
		Home:     domain.ScoreSide{Team: mapTeam(g.HomeTeam)},
		Away:     domain.ScoreSide{Team: mapTeam(g.VisitorTeam)},
	}
	// balldontlie reports zero for untipped games; only started games get
	// a concrete score so null keeps meaning "not yet started".
	if status != domain.StatusScheduled && status != domain.StatusPostponed && status != domain.StatusCanceled {
		game.Home.Score = domain.IntPtr(g.HomeTeamScore)
		game.Away.Score = domain.IntPtr(g.VisitorTeamScore)
	}
	return game
}

func mapTeam(t teamResponse) domain.Team {
	id := strconv.Itoa(t.ID)
	return domain.Team{
		ID:        idPrefix + id,
		Name:      t.FullName,
		ShortName: t.Abbreviation,
		Sport:     domain.SportBasketball,
		League:    "NBA",
		SourceIDs: map[string]string{sourceKey: id},
	}
}

// mapStatus is a total mapping over balldontlie's status vocabulary;
// unrecognized values (including tip-off times like "7:30 PM ET") count as
// scheduled.
func mapStatus(status string) domain.GameStatus {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch {
	case normalized == "final" || normalized == "ended":
		return domain.StatusFinal
	case strings.Contains(normalized, "in progress") || normalized == "halftime" || strings.Contains(normalized, "end of"):
		return domain.StatusInProgress
	case normalized == "postponed":
		return domain.StatusPostponed
	case normalized == "canceled" || normalized == "cancelled":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}
