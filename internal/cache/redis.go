package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sports-games-service/internal/logging"
)

// Redis backs the response cache with a shared Redis instance so nearby
// replicas reuse upstream responses. All Redis errors degrade to cache
// misses.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis builds a Redis-backed store. The connection is verified lazily;
// an unreachable Redis only disables caching.
func NewRedis(addr string, db int, logger *slog.Logger) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		logger: logger,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.Warn(r.logger, "cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logging.Warn(r.logger, "cache set failed", "key", key, "error", err)
	}
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error { return r.client.Close() }
