package balldontlie

import "time"

const (
	providerName = "balldontlie"
	sourceKey    = "balldontlie"
	idPrefix     = "nba-"

	defaultBaseURL     = "https://www.balldontlie.io/api/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 5
)
