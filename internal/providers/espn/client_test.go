package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/providers"
)

func chiefs() domain.Team {
	return domain.Team{
		ID:        "nfl-chiefs",
		Name:      "Kansas City Chiefs",
		ShortName: "Chiefs",
		Sport:     domain.SportFootball,
		League:    "NFL",
		SourceIDs: map[string]string{sourceKey: "12"},
	}
}

const chiefsDayBody = `{
	"events": [
		{
			"id": "401547417",
			"date": "2025-09-07T17:00Z",
			"status": {"type": {"state": "pre", "name": "STATUS_SCHEDULED"}},
			"competitions": [{
				"venue": {"fullName": "Arrowhead Stadium"},
				"competitors": [
					{"homeAway": "home", "score": "0", "team": {"id": "12", "displayName": "Kansas City Chiefs", "abbreviation": "KC"}},
					{"homeAway": "away", "score": "0", "team": {"id": "7", "displayName": "Denver Broncos", "abbreviation": "DEN"}}
				]
			}]
		},
		{
			"id": "401547999",
			"date": "2025-09-07T20:00Z",
			"status": {"type": {"state": "pre", "name": "STATUS_SCHEDULED"}},
			"competitions": [{
				"competitors": [
					{"homeAway": "home", "score": "0", "team": {"id": "4", "displayName": "Buffalo Bills", "abbreviation": "BUF"}},
					{"homeAway": "away", "score": "0", "team": {"id": "15", "displayName": "Miami Dolphins", "abbreviation": "MIA"}}
				]
			}]
		}
	]
}`

func TestUpcomingGamesFiltersLeagueSlate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/football/nfl/scoreboard" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("dates") != "20250907" {
			t.Fatalf("unexpected dates %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(chiefsDayBody))
	}))
	defer srv.Close()

	client := NewNFL(Config{BaseURL: srv.URL})

	rng := domain.DayRange(time.Date(2025, 9, 7, 9, 0, 0, 0, time.UTC))
	games, err := client.UpcomingGames(context.Background(), chiefs(), rng)
	if err != nil {
		t.Fatalf("upcoming games: %v", err)
	}
	if len(games) != 1 || games[0].ID != "nfl-401547417" {
		t.Fatalf("expected only the matching event, got %+v", games)
	}
}

func TestUpcomingGamesSkipsFailedDays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dates") == "20250907" {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(chiefsDayBody))
	}))
	defer srv.Close()

	client := NewNFL(Config{BaseURL: srv.URL})

	rng := domain.DateRange{
		From: time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC),
	}
	games, err := client.UpcomingGames(context.Background(), chiefs(), rng)
	if err != nil {
		t.Fatalf("upcoming games: %v", err)
	}
	// Day one failed and was skipped; day two still contributed its match.
	if len(games) != 1 {
		t.Fatalf("expected the surviving day's match, got %+v", games)
	}
}

func TestUpcomingGamesFallsBackWhenAllDaysFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewNFL(Config{BaseURL: srv.URL})

	rng := domain.DayRange(time.Date(2025, 9, 7, 9, 0, 0, 0, time.UTC))
	games, err := client.UpcomingGames(context.Background(), chiefs(), rng)
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if len(games) != 1 || games[0].ID != "nfl-fallback-nfl-chiefs" {
		t.Fatalf("expected synthesized fallback, got %+v", games)
	}
	if games[0].Away.Team.ShortName != "DEN" || games[0].Venue != "Chiefs Stadium" {
		t.Fatalf("unexpected fallback shape %+v", games[0])
	}
}

func TestUpcomingGamesFallsBackWithoutIdentifier(t *testing.T) {
	client := NewNFL(Config{BaseURL: "http://unreachable.invalid"})

	team := chiefs()
	team.SourceIDs = nil

	games, err := client.UpcomingGames(context.Background(), team, domain.DayRange(time.Now()))
	if err != nil {
		t.Fatalf("fallback path must not error: %v", err)
	}
	if len(games) != 1 || games[0].Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled fallback, got %+v", games)
	}
}

func TestUpcomingGamesEmptySlateStaysEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	client := NewNFL(Config{BaseURL: srv.URL})

	games, err := client.UpcomingGames(context.Background(), chiefs(), domain.DayRange(time.Now()))
	if err != nil {
		t.Fatalf("upcoming games: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("empty slate must stay empty, got %+v", games)
	}
}

func TestScoresByDateFailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNFL(Config{BaseURL: srv.URL})

	_, err := client.ScoresByDate(context.Background(), "2025-09-07")
	if providers.CodeOf(err) != "nfl-scores-failed" {
		t.Fatalf("expected nfl-scores-failed, got %v", err)
	}
}

func TestLiveGameUnsupported(t *testing.T) {
	client := NewNFL(Config{})

	_, err := client.LiveGame(context.Background(), "nfl-401547417")
	if providers.KindOf(err) != providers.KindUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if providers.CodeOf(err) != "nfl-live-not-supported" {
		t.Fatalf("unexpected code %v", err)
	}
}

func TestMLBScoreboardNamespacesIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/baseball/mlb/scoreboard" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"events": [{
			"id": "401581234",
			"date": "2025-06-15T20:10Z",
			"status": {"type": {"state": "pre", "name": "STATUS_SCHEDULED"}},
			"competitions": [{"competitors": [
				{"homeAway": "home", "score": "0", "team": {"id": "19", "displayName": "Los Angeles Dodgers", "abbreviation": "LAD"}},
				{"homeAway": "away", "score": "0", "team": {"id": "26", "displayName": "San Francisco Giants", "abbreviation": "SF"}}
			]}]
		}]}`))
	}))
	defer srv.Close()

	client := NewMLBScoreboard(Config{BaseURL: srv.URL})

	games, err := client.EventsByDate(context.Background(), "2025-06-15")
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(games) != 1 || games[0].ID != "espn-401581234" {
		t.Fatalf("unexpected events %+v", games)
	}
	if games[0].Home.Team.ID != "espn-19" || games[0].Home.Team.Sport != domain.SportBaseball {
		t.Fatalf("unexpected namespacing %+v", games[0].Home.Team)
	}
}
