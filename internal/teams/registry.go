package teams

import "sports-games-service/internal/domain"

// Upstream provider keys used in Team.SourceIDs.
const (
	SourceMLB          = "mlb"
	SourceBalldontlie  = "balldontlie"
	SourceESPN         = "espn"
	SourceFootballData = "footballData"
)

// Featured returns the static registry of followed teams. Local IDs are
// stable and never derived from upstream data.
func Featured() []domain.Team {
	return []domain.Team{
		{
			ID:        "mlb-dodgers",
			Name:      "Los Angeles Dodgers",
			ShortName: "Dodgers",
			Sport:     domain.SportBaseball,
			League:    "MLB",
			SourceIDs: map[string]string{SourceMLB: "119"},
		},
		{
			ID:        "nba-lakers",
			Name:      "Los Angeles Lakers",
			ShortName: "Lakers",
			Sport:     domain.SportBasketball,
			League:    "NBA",
			SourceIDs: map[string]string{SourceBalldontlie: "14"},
		},
		{
			ID:        "epl-liverpool",
			Name:      "Liverpool FC",
			ShortName: "Liverpool",
			Sport:     domain.SportSoccer,
			League:    "Premier League",
			SourceIDs: map[string]string{SourceFootballData: "64"},
		},
		{ID: "nfl-chiefs", Name: "Kansas City Chiefs", ShortName: "Chiefs", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "12"}},
		{ID: "nfl-49ers", Name: "San Francisco 49ers", ShortName: "49ers", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "25"}},
		{ID: "nfl-eagles", Name: "Philadelphia Eagles", ShortName: "Eagles", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "21"}},
		{ID: "nfl-bills", Name: "Buffalo Bills", ShortName: "Bills", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "4"}},
		{ID: "nfl-cowboys", Name: "Dallas Cowboys", ShortName: "Cowboys", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "6"}},
		{ID: "nfl-ravens", Name: "Baltimore Ravens", ShortName: "Ravens", Sport: domain.SportFootball, League: "NFL", SourceIDs: map[string]string{SourceESPN: "33"}},
	}
}

// ByID resolves a featured team by its local identifier.
func ByID(id string) (domain.Team, bool) {
	for _, t := range Featured() {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}
