package mlb

import (
	"context"
	"strconv"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
)

// liveInfoOrDemo fetches the play-by-play snapshot for an in-progress game.
// Every failure path is swallowed: when the feed is unreachable or empty the
// demo snapshot stands in (if enabled), so an in-progress game still shows a
// live indicator.
func (c *Client) liveInfoOrDemo(ctx context.Context, gamePk int, teamID string) *domain.LiveGameInfo {
	info := c.fetchLiveInfo(ctx, gamePk, teamID)
	if info == nil && c.demoLive {
		return demoLiveInfo()
	}
	return info
}

func (c *Client) fetchLiveInfo(ctx context.Context, gamePk int, teamID string) *domain.LiveGameInfo {
	var payload feedResponse
	if err := c.getJSON(ctx, "/game/"+strconv.Itoa(gamePk)+"/feed/live", &payload); err != nil {
		logging.Warn(c.logger, "mlb live feed unavailable",
			logging.FieldProvider, providerName, "game_pk", gamePk, "error", err)
		return nil
	}

	info := mapLiveInfo(payload, teamID)
	if info.Empty() {
		return nil
	}
	return &info
}

// mapLiveInfo extracts pitcher/batter/inning state from a live feed document.
// When the feed has no current play but the detailed state says the game is
// genuinely running, a minimal between-innings placeholder is produced.
func mapLiveInfo(payload feedResponse, teamID string) domain.LiveGameInfo {
	var info domain.LiveGameInfo

	play := payload.LiveData.Plays.CurrentPlay
	if play == nil {
		if payload.GameData.Status.DetailedState == "In Progress" {
			info.Inning = "Between innings"
			info.InningState = "Break"
		}
		return info
	}

	if p := play.Matchup.Pitcher; p != nil {
		info.CurrentPitcher = &domain.LivePlayer{
			Name: p.FullName,
			Team: playerSide(p.ID, teamID),
		}
	}

	if b := play.Matchup.Batter; b != nil {
		inning := "?"
		if play.About.Inning > 0 {
			inning = strconv.Itoa(play.About.Inning)
		}
		info.CurrentBatter = &domain.LiveBatter{
			Name:    b.FullName,
			Team:    playerSide(b.ID, teamID),
			Inning:  inning,
			Outs:    play.Count.Outs,
			Balls:   play.Count.Balls,
			Strikes: play.Count.Strikes,
		}
	}

	if play.About.Inning > 0 {
		info.Inning = strconv.Itoa(play.About.Inning)
	}
	info.InningState = play.About.InningHalf

	return info
}

func playerSide(playerID int, teamID string) string {
	if strconv.Itoa(playerID) == teamID {
		return "Home"
	}
	return "Away"
}
