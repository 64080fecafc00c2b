package footballdata

import (
	"strconv"

	"sports-games-service/internal/domain"
)

func mapMatch(m matchResponse) domain.Game {
	return domain.Game{
		ID:       idPrefix + strconv.Itoa(m.ID),
		Sport:    domain.SportSoccer,
		StartsAt: m.UTCDate,
		Status:   mapStatus(m.Status),
		Home:     domain.ScoreSide{Team: mapTeam(m.HomeTeam), Score: m.Score.FullTime.Home},
		Away:     domain.ScoreSide{Team: mapTeam(m.AwayTeam), Score: m.Score.FullTime.Away},
		Venue:    m.Venue,
	}
}

func mapTeam(t upstreamTeam) domain.Team {
	id := strconv.Itoa(t.ID)
	short := t.TLA
	if short == "" {
		short = t.ShortName
	}
	return domain.Team{
		ID:        idPrefix + id,
		Name:      t.Name,
		ShortName: short,
		Sport:     domain.SportSoccer,
		League:    "Premier League",
		SourceIDs: map[string]string{sourceKey: id},
	}
}

// mapStatus is total over football-data's match status vocabulary.
func mapStatus(status string) domain.GameStatus {
	switch status {
	case "FINISHED":
		return domain.StatusFinal
	case "IN_PLAY", "PAUSED":
		return domain.StatusInProgress
	case "POSTPONED", "SUSPENDED":
		return domain.StatusPostponed
	case "CANCELLED":
		return domain.StatusCanceled
	default:
		return domain.StatusScheduled
	}
}
