package config

const (
	envMLBBaseURL  = "MLB_BASE_URL"
	envMLBDemoLive = "MLB_DEMO_LIVE"

	defaultMLBBaseURL = "https://statsapi.mlb.com/api/v1"
)

// MLBConfig controls how we talk to the MLB stats API. DemoLive substitutes a
// fixed illustrative live snapshot when the play-by-play feed is unavailable,
// keeping the live UI path exercised without real data.
type MLBConfig struct {
	BaseURL  string
	DemoLive bool
}

func loadMLB() MLBConfig {
	return MLBConfig{
		BaseURL:  envOrDefault(envMLBBaseURL, defaultMLBBaseURL),
		DemoLive: boolEnvOrDefault(envMLBDemoLive, true),
	}
}
