package mlb

import "time"

const (
	providerName = "mlb-statsapi"
	sourceKey    = "mlb"
	idPrefix     = "mlb-"

	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	gamedayURLFormat = "https://www.mlb.com/gameday/%d"
)
