package espn

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// scoreboardDate converts a YYYY-MM-DD date to the compact YYYYMMDD form the
// scoreboard endpoint expects.
func scoreboardDate(date string) string {
	return strings.ReplaceAll(date, "-", "")
}
