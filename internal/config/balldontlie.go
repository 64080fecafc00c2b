package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"
	envBdlPages   = "BALLDONTLIE_MAX_PAGES"

	defaultBdlBaseURL  = "https://www.balldontlie.io/api/v1"
	defaultBdlMaxPages = 5
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL  string
	APIKey   string
	MaxPages int
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:  envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:   envOrDefault(envBdlAPIKey, ""),
		MaxPages: intEnvOrDefault(envBdlPages, defaultBdlMaxPages),
	}
}
