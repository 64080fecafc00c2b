package teams

// Publicly available logos keyed by local team id.
var teamLogos = map[string]string{
	"mlb-dodgers":   "https://a.espncdn.com/i/teamlogos/mlb/500/la.png",
	"nba-lakers":    "https://a.espncdn.com/i/teamlogos/nba/500/lal.png",
	"epl-liverpool": "https://a.espncdn.com/i/teamlogos/soccer/500/364.png",
	"nfl-chiefs":    "https://a.espncdn.com/i/teamlogos/nfl/500/kc.png",
	"nfl-49ers":     "https://a.espncdn.com/i/teamlogos/nfl/500/sf.png",
	"nfl-eagles":    "https://a.espncdn.com/i/teamlogos/nfl/500/phi.png",
	"nfl-bills":     "https://a.espncdn.com/i/teamlogos/nfl/500/buf.png",
	"nfl-cowboys":   "https://a.espncdn.com/i/teamlogos/nfl/500/dal.png",
	"nfl-ravens":    "https://a.espncdn.com/i/teamlogos/nfl/500/bal.png",
}

// Logo returns the logo URL for a local team id, or "" when none is known.
func Logo(teamID string) string {
	return teamLogos[teamID]
}
