package config

import "time"

const (
	envCacheEnabled = "CACHE_ENABLED"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envCacheTTL     = "CACHE_DEFAULT_TTL"

	defaultCacheTTL = 60 * Duration(time.Second)
)

// CacheConfig controls the transport-layer response cache. When RedisAddr is
// set, Redis backs the cache; otherwise an in-process store is used.
type CacheConfig struct {
	Enabled    bool
	RedisAddr  string
	RedisDB    int
	DefaultTTL Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Enabled:    boolEnvOrDefault(envCacheEnabled, true),
		RedisAddr:  envOrDefault(envRedisAddr, ""),
		RedisDB:    intEnvOrDefault(envRedisDB, 0),
		DefaultTTL: durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}
