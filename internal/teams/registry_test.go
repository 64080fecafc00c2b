package teams

import (
	"testing"

	"sports-games-service/internal/domain"
)

func TestFeaturedIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, team := range Featured() {
		if seen[team.ID] {
			t.Fatalf("duplicate team id %s", team.ID)
		}
		seen[team.ID] = true
	}
}

func TestByID(t *testing.T) {
	team, ok := ByID("mlb-dodgers")
	if !ok {
		t.Fatal("expected dodgers")
	}
	if team.Sport != domain.SportBaseball || team.ShortName != "Dodgers" {
		t.Fatalf("unexpected team %+v", team)
	}
	if id, _ := team.SourceID(SourceMLB); id != "119" {
		t.Fatalf("unexpected mlb id %s", id)
	}

	if _, ok := ByID("nhl-kings"); ok {
		t.Fatal("expected unknown team")
	}
}

func TestEveryFeaturedTeamHasSourceID(t *testing.T) {
	for _, team := range Featured() {
		if len(team.SourceIDs) == 0 {
			t.Fatalf("team %s has no upstream identifiers", team.ID)
		}
	}
}

func TestLogos(t *testing.T) {
	for _, team := range Featured() {
		if Logo(team.ID) == "" {
			t.Fatalf("missing logo for %s", team.ID)
		}
	}
	if Logo("unknown") != "" {
		t.Fatal("expected empty logo for unknown team")
	}
}
