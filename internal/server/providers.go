package server

import (
	"log/slog"
	"net/http"
	"time"

	"sports-games-service/internal/app/games"
	"sports-games-service/internal/cache"
	"sports-games-service/internal/config"
	"sports-games-service/internal/domain"
	"sports-games-service/internal/metrics"
	"sports-games-service/internal/providers"
	"sports-games-service/internal/providers/balldontlie"
	"sports-games-service/internal/providers/espn"
	"sports-games-service/internal/providers/footballdata"
	"sports-games-service/internal/providers/mlb"
)

// cacheRules orders the freshness windows from most to least volatile;
// first substring match wins.
var cacheRules = []cache.Rule{
	{Match: "feed/live", TTL: 10 * time.Second},
	{Match: "boxscore", TTL: 10 * time.Second},
	{Match: "scoreboard", TTL: 120 * time.Second},
	{Match: "dates", TTL: 30 * time.Second},
	{Match: "date=", TTL: 30 * time.Second},
	{Match: "schedule", TTL: 60 * time.Second},
	{Match: "matches", TTL: 60 * time.Second},
	{Match: "games", TTL: 60 * time.Second},
}

type providerSet struct {
	bySport  map[domain.Sport]providers.SportsProvider
	byLeague map[string]providers.SportsProvider
	stitch   games.StitchSource
	close    func() error
}

// buildProviderSet wires the four adapters behind a shared caching HTTP
// client and the retry decorator, plus the secondary stitch source.
func buildProviderSet(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providerSet {
	store, closeStore := buildCacheStore(cfg, logger)
	httpClient := buildHTTPClient(cfg, store, recorder)

	mlbClient := mlb.NewClient(mlb.Config{
		BaseURL:    cfg.MLB.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
		DemoLive:   cfg.MLB.DemoLive,
	})
	nbaClient := balldontlie.NewClient(balldontlie.Config{
		BaseURL:    cfg.Balldontlie.BaseURL,
		APIKey:     cfg.Balldontlie.APIKey,
		HTTPClient: httpClient,
		Logger:     logger,
		MaxPages:   cfg.Balldontlie.MaxPages,
	})
	nflClient := espn.NewNFL(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	eplClient := footballdata.NewClient(footballdata.Config{
		BaseURL:     cfg.FootballData.BaseURL,
		APIKey:      cfg.FootballData.APIKey,
		Competition: cfg.FootballData.Competition,
		HTTPClient:  httpClient,
		Logger:      logger,
	})

	withRetry := func(p providers.SportsProvider) providers.SportsProvider {
		return providers.NewRetrying(p, logger, cfg.Retry.Attempts, cfg.Retry.Backoff)
	}

	bySport := map[domain.Sport]providers.SportsProvider{
		domain.SportBaseball:   withRetry(mlbClient),
		domain.SportBasketball: withRetry(nbaClient),
		domain.SportFootball:   withRetry(nflClient),
		domain.SportSoccer:     withRetry(eplClient),
	}
	byLeague := map[string]providers.SportsProvider{
		"mlb": bySport[domain.SportBaseball],
		"nba": bySport[domain.SportBasketball],
		"nfl": bySport[domain.SportFootball],
		"epl": bySport[domain.SportSoccer],
	}

	stitch := espn.NewMLBScoreboard(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	return providerSet{
		bySport:  bySport,
		byLeague: byLeague,
		stitch:   stitch,
		close:    closeStore,
	}
}

func buildCacheStore(cfg config.Config, logger *slog.Logger) (cache.Store, func() error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.RedisAddr != "" {
		redis := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisDB, logger)
		return redis, redis.Close
	}
	return cache.NewMemory(), nil
}

func buildHTTPClient(cfg config.Config, store cache.Store, recorder *metrics.Recorder) *http.Client {
	client := &http.Client{Timeout: 10 * time.Second}
	if store == nil {
		return client
	}
	transport := cache.NewTransport(store, cfg.Cache.DefaultTTL, cacheRules, nil)
	transport.Observe = func(hit bool) { recorder.RecordCache(hit) }
	client.Transport = transport
	return client
}
