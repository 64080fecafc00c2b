package config

const (
	envFDBaseURL     = "FOOTBALL_DATA_BASE_URL"
	envFDAPIKey      = "FOOTBALL_DATA_API_KEY"
	envFDCompetition = "FOOTBALL_DATA_COMPETITION"

	defaultFDBaseURL = "https://api.football-data.org/v4"
	// Premier League competition code on football-data.org.
	defaultFDCompetition = "2021"
)

// FootballDataConfig controls the football-data.org client. Without an API
// key the client runs unauthenticated with reduced access.
type FootballDataConfig struct {
	BaseURL     string
	APIKey      string
	Competition string
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL:     envOrDefault(envFDBaseURL, defaultFDBaseURL),
		APIKey:      envOrDefault(envFDAPIKey, ""),
		Competition: envOrDefault(envFDCompetition, defaultFDCompetition),
	}
}
