package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("unexpected default port %s", cfg.Port)
	}
	if cfg.Retry.Attempts != 2 || cfg.Retry.Backoff != 250*time.Millisecond {
		t.Fatalf("unexpected retry defaults %+v", cfg.Retry)
	}
	if cfg.MLB.BaseURL == "" || !cfg.MLB.DemoLive {
		t.Fatalf("unexpected mlb defaults %+v", cfg.MLB)
	}
	if cfg.Balldontlie.MaxPages != 5 {
		t.Fatalf("unexpected balldontlie defaults %+v", cfg.Balldontlie)
	}
	if cfg.FootballData.Competition != "2021" {
		t.Fatalf("unexpected football-data defaults %+v", cfg.FootballData)
	}
	if !cfg.Cache.Enabled || cfg.Cache.DefaultTTL != time.Minute {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FOOTBALL_DATA_API_KEY", "secret")
	t.Setenv("MLB_DEMO_LIVE", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.FootballData.APIKey != "secret" {
		t.Fatalf("expected api key override")
	}
	if cfg.MLB.DemoLive {
		t.Fatalf("expected demo live disabled")
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Fatalf("expected redis addr override")
	}
}
