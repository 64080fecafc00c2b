package espn

import "time"

const (
	sourceKey = "espn"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second

	// Status type states on scoreboard events.
	statePre  = "pre"
	stateIn   = "in"
	statePost = "post"
)
