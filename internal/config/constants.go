package config

import "time"

const (
	envPort          = "PORT"
	envRetryAttempts = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff  = "PROVIDER_RETRY_BACKOFF"

	defaultPort = "4000"
	// Retries apply only to score/live lookups; upcoming-games calls fall
	// back immediately instead of retrying.
	defaultRetryAttempts = 2
	defaultRetryBackoff  = 250 * Duration(time.Millisecond)
)
