package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sports-games-service/internal/domain"
)

const (
	defaultRetryAttempts = 2
	defaultRetryBackoff  = 250 * time.Millisecond
)

// retryingProvider wraps a SportsProvider with retry/backoff on the score and
// live lookups. UpcomingGames is deliberately left single-attempt so its
// fallback synthesis stays immediate.
type retryingProvider struct {
	inner       SportsProvider
	logger      *slog.Logger
	maxAttempts int
	interval    time.Duration
}

// NewRetrying wraps the given provider with retries. If maxAttempts or
// interval are <= 0, defaults are used. maxAttempts of 1 disables retries.
func NewRetrying(inner SportsProvider, logger *slog.Logger, maxAttempts int, interval time.Duration) SportsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r *retryingProvider) Name() string { return r.inner.Name() }

func (r *retryingProvider) TeamIdentifier(team domain.Team) (string, bool) {
	return r.inner.TeamIdentifier(team)
}

func (r *retryingProvider) UpcomingGames(ctx context.Context, team domain.Team, rng domain.DateRange) ([]domain.Game, error) {
	return r.inner.UpcomingGames(ctx, team, rng)
}

func (r *retryingProvider) ScoresByDate(ctx context.Context, date string) ([]domain.Game, error) {
	var games []domain.Game
	err := r.retry(ctx, "scores", func() error {
		var opErr error
		games, opErr = r.inner.ScoresByDate(ctx, date)
		return opErr
	})
	return games, err
}

func (r *retryingProvider) LiveGame(ctx context.Context, gameID string) (domain.Game, error) {
	var game domain.Game
	err := r.retry(ctx, "live", func() error {
		var opErr error
		game, opErr = r.inner.LiveGame(ctx, gameID)
		return opErr
	})
	return game, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	policy := backoff.WithContext(backoff.WithMaxRetries(newExponential(r.interval), uint64(r.maxAttempts-1)), ctx)

	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if !retriable(err) {
			return backoff.Permanent(err)
		}
		if attempt < r.maxAttempts {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.inner.Name(), "provider call retry",
				"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		}
		return err
	}, policy)
}

func newExponential(interval time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = 10 * interval
	return b
}

// retriable reports whether another attempt could help. Unsupported
// operations, missing identifiers, and not-found are permanent.
func retriable(err error) bool {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind == KindUpstreamUnavailable
	}
	return true
}
