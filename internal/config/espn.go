package config

const (
	envESPNBaseURL     = "ESPN_BASE_URL"
	defaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// ESPNConfig controls the public scoreboard feed used for NFL games and as
// the secondary source for the baseball opponent stitch.
type ESPNConfig struct {
	BaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
	}
}
