package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSourceID(t *testing.T) {
	team := Team{ID: "mlb-dodgers", SourceIDs: map[string]string{"mlb": "119"}}

	if id, ok := team.SourceID("mlb"); !ok || id != "119" {
		t.Fatalf("expected mlb id 119, got %q ok=%v", id, ok)
	}
	if _, ok := team.SourceID("espn"); ok {
		t.Fatalf("expected no espn id")
	}
	if _, ok := (Team{}).SourceID("mlb"); ok {
		t.Fatalf("expected no id on empty team")
	}
}

func TestLiveGameInfoEmpty(t *testing.T) {
	if !(LiveGameInfo{}).Empty() {
		t.Fatalf("zero value should be empty")
	}
	if (LiveGameInfo{Inning: "7"}).Empty() {
		t.Fatalf("inning set should not be empty")
	}
	if (LiveGameInfo{CurrentPitcher: &LivePlayer{Name: "X"}}).Empty() {
		t.Fatalf("pitcher set should not be empty")
	}
}

func TestScoreSideNullScoreSerialization(t *testing.T) {
	raw, err := json.Marshal(ScoreSide{Team: Team{ID: "nba-lakers"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"score":null`) {
		t.Fatalf("nil score must serialize as null, got %s", raw)
	}

	raw, err = json.Marshal(ScoreSide{Team: Team{ID: "nba-lakers"}, Score: IntPtr(0)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"score":0`) {
		t.Fatalf("zero score must stay zero, got %s", raw)
	}
}

func TestResultEnvelope(t *testing.T) {
	ok := Ok([]Game{{ID: "mlb-1"}})
	if !ok.OK || len(ok.Data) != 1 || ok.Error != "" {
		t.Fatalf("unexpected ok result: %+v", ok)
	}

	fail := Fail[[]Game]("mlb-scores-failed")
	if fail.OK || fail.Error != "mlb-scores-failed" {
		t.Fatalf("unexpected fail result: %+v", fail)
	}

	raw, err := json.Marshal(fail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Fatalf("failed result should omit data, got %s", raw)
	}
}

func TestDayRangeBounds(t *testing.T) {
	at := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rng := DayRange(at)

	if rng.From.Hour() != 0 || rng.From.Day() != 15 {
		t.Fatalf("unexpected range start %v", rng.From)
	}
	if rng.To.Hour() != 23 || rng.To.Minute() != 59 || rng.To.Second() != 59 {
		t.Fatalf("unexpected range end %v", rng.To)
	}
	if rng.FromDate() != "2025-06-15" || rng.ToDate() != "2025-06-15" {
		t.Fatalf("unexpected date strings %s..%s", rng.FromDate(), rng.ToDate())
	}
}

func TestLookaheadRange(t *testing.T) {
	at := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rng := LookaheadRange(at, 30)

	if rng.FromDate() != "2025-06-15" {
		t.Fatalf("unexpected start %s", rng.FromDate())
	}
	if rng.ToDate() != "2025-07-15" {
		t.Fatalf("unexpected end %s", rng.ToDate())
	}
}

func TestRangeDaysInclusive(t *testing.T) {
	rng := DateRange{
		From: time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	days := rng.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Format("2006-01-02") != "2025-01-30" || days[2].Format("2006-01-02") != "2025-02-01" {
		t.Fatalf("unexpected day bounds %v", days)
	}
}
