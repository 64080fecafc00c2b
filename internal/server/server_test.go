package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sports-games-service/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:  "0",
		Retry: config.RetryConfig{Attempts: 1, Backoff: time.Millisecond},
		Cache: config.CacheConfig{Enabled: true, DefaultTTL: time.Minute},
	}
}

func TestNewWiresHealthEndpoint(t *testing.T) {
	srv := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewWithoutMetricsServer(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv.metricsServer != nil {
		t.Fatalf("disabled telemetry must not start a metrics listener")
	}
}

func TestTeamsEndpointServesRegistry(t *testing.T) {
	srv := New(testConfig(), nil)

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); len(body) == 0 {
		t.Fatalf("expected a body")
	}
}
