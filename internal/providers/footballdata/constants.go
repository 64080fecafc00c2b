package footballdata

import "time"

const (
	providerName = "football-data"
	sourceKey    = "footballData"
	idPrefix     = "epl-"

	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultCompetition = "2021"
	defaultHTTPTimeout = 10 * time.Second

	authHeader = "X-Auth-Token"
)
