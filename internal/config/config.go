package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Retry        RetryConfig
	MLB          MLBConfig
	Balldontlie  BalldontlieConfig
	ESPN         ESPNConfig
	FootballData FootballDataConfig
	Commentary   CommentaryConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
}

// RetryConfig controls the retry decorator around score/live lookups.
type RetryConfig struct {
	Attempts int
	Backoff  Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Absent upstream credentials never fail startup; they select the degraded or
// fallback path for that adapter.
func Load() Config {
	return Config{
		Port: envOrDefault(envPort, defaultPort),
		Retry: RetryConfig{
			Attempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			Backoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		},
		MLB:          loadMLB(),
		Balldontlie:  loadBalldontlie(),
		ESPN:         loadESPN(),
		FootballData: loadFootballData(),
		Commentary:   loadCommentary(),
		Cache:        loadCache(),
		Metrics:      loadMetrics(),
	}
}
