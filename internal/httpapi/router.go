// Package httpapi is the outward-facing HTTP surface: routing, middleware,
// and the Result envelope around the orchestrator's answers.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sports-games-service/internal/metrics"
)

// NewRouter assembles the route tree with CORS, request logging, and metrics.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(RequestLogger(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/teams", handler.Teams)
	r.Get("/games", handler.Games)
	r.Get("/scores", handler.Scores)
	r.Get("/live", handler.Live)
	r.Get("/commentary", handler.Commentary)

	return r
}
