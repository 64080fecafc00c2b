package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"sports-games-service/internal/domain"
)

type scriptedProvider struct {
	name         string
	scoreErrs    []error
	scoreCalls   int
	liveCalls    int
	upcomingCall int
}

func (s *scriptedProvider) Name() string { return s.name }

func (s *scriptedProvider) TeamIdentifier(team domain.Team) (string, bool) { return "", false }

func (s *scriptedProvider) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	s.upcomingCall++
	return nil, errors.New("never retried")
}

func (s *scriptedProvider) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	idx := s.scoreCalls
	s.scoreCalls++
	if idx < len(s.scoreErrs) && s.scoreErrs[idx] != nil {
		return nil, s.scoreErrs[idx]
	}
	return []domain.Game{{ID: "nba-1"}}, nil
}

func (s *scriptedProvider) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	s.liveCalls++
	return domain.Game{}, Unsupported(s.name, "nba-live-not-supported")
}

func TestRetryingScoresRecovers(t *testing.T) {
	inner := &scriptedProvider{
		name:      "balldontlie",
		scoreErrs: []error{Upstream("balldontlie", "nba-scores-failed", errors.New("status 502"))},
	}
	p := NewRetrying(inner, nil, 2, time.Millisecond)

	games, err := p.ScoresByDate(context.Background(), "2025-06-15")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(games) != 1 || inner.scoreCalls != 2 {
		t.Fatalf("expected second attempt to succeed, calls=%d", inner.scoreCalls)
	}
}

func TestRetryingScoresExhaustsAttempts(t *testing.T) {
	failure := Upstream("balldontlie", "nba-scores-failed", errors.New("status 502"))
	inner := &scriptedProvider{
		name:      "balldontlie",
		scoreErrs: []error{failure, failure, failure},
	}
	p := NewRetrying(inner, nil, 2, time.Millisecond)

	_, err := p.ScoresByDate(context.Background(), "2025-06-15")
	if CodeOf(err) != "nba-scores-failed" {
		t.Fatalf("expected stable code, got %v", err)
	}
	if inner.scoreCalls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", inner.scoreCalls)
	}
}

func TestRetryingDoesNotRetryUnsupported(t *testing.T) {
	inner := &scriptedProvider{name: "balldontlie"}
	p := NewRetrying(inner, nil, 3, time.Millisecond)

	_, err := p.LiveGame(context.Background(), "nba-1")
	if KindOf(err) != KindUnsupported {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if inner.liveCalls != 1 {
		t.Fatalf("unsupported must not be retried, calls=%d", inner.liveCalls)
	}
}

func TestRetryingLeavesUpcomingSingleAttempt(t *testing.T) {
	inner := &scriptedProvider{name: "balldontlie"}
	p := NewRetrying(inner, nil, 3, time.Millisecond)

	_, _ = p.UpcomingGames(context.Background(), domain.Team{}, domain.DateRange{})
	if inner.upcomingCall != 1 {
		t.Fatalf("upcoming games must not be retried, calls=%d", inner.upcomingCall)
	}
}

func TestRetryingPassthroughs(t *testing.T) {
	inner := &scriptedProvider{name: "balldontlie"}
	p := NewRetrying(inner, nil, 0, 0)

	if p.Name() != "balldontlie" {
		t.Fatalf("unexpected name %s", p.Name())
	}
	if _, ok := p.TeamIdentifier(domain.Team{}); ok {
		t.Fatal("expected identifier passthrough")
	}
}
