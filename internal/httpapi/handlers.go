package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"sports-games-service/internal/app/games"
	"sports-games-service/internal/domain"
	"sports-games-service/internal/providers"
	"sports-games-service/internal/teams"
)

// GamesService is the orchestrator surface the handlers consume.
type GamesService interface {
	Teams() []domain.Team
	GamesForTeam(ctx context.Context, teamID string) ([]domain.Game, error)
	ScoresForDate(ctx context.Context, league, date string) ([]domain.Game, error)
	LiveGame(ctx context.Context, league, gameID string) (domain.Game, error)
}

// CommentarySearcher looks up commentary items. It never fails.
type CommentarySearcher interface {
	Search(ctx context.Context, query string) []domain.CommentaryItem
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	svc        GamesService
	commentary CommentarySearcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(svc GamesService, commentary CommentarySearcher, logger *slog.Logger) *Handler {
	return &Handler{
		svc:        svc,
		commentary: commentary,
		logger:     logger,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, loggerFromRequest(r, h.logger))
}

// Ready reports readiness for traffic. There is no warm-up state; the
// service is ready as soon as it listens.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, loggerFromRequest(r, h.logger))
}

type teamPayload struct {
	domain.Team
	Logo string `json:"logo,omitempty"`
}

// Teams lists the featured team registry with logos.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	featured := h.svc.Teams()
	payload := make([]teamPayload, 0, len(featured))
	for _, t := range featured {
		payload = append(payload, teamPayload{Team: t, Logo: teams.Logo(t.ID)})
	}
	writeOK(w, payload, logger)
}

// Games answers /games?teamId= with the team's upcoming or live games.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	teamID := r.URL.Query().Get("teamId")
	if teamID == "" {
		writeFailure(w, http.StatusBadRequest, "missing teamId", logger)
		return
	}

	result, err := h.svc.GamesForTeam(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, games.ErrUnknownTeam) {
			writeFailure(w, http.StatusNotFound, "unknown team", logger)
			return
		}
		logger.Error("games lookup failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "internal-error", logger)
		return
	}
	writeOK(w, result, logger)
}

// Scores answers /scores?league=&date= with the league slate; date defaults
// to today. Upstream failures ride the envelope, not the HTTP status.
func (h *Handler) Scores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	league := r.URL.Query().Get("league")
	if league == "" {
		writeFailure(w, http.StatusBadRequest, "missing league", logger)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid date", logger)
		return
	}

	result, err := h.svc.ScoresForDate(r.Context(), league, date)
	if err != nil {
		if errors.Is(err, games.ErrUnknownLeague) {
			writeFailure(w, http.StatusBadRequest, "unknown league", logger)
			return
		}
		writeFailure(w, http.StatusOK, providers.CodeOf(err), logger)
		return
	}
	writeOK(w, result, logger)
}

// Live answers /live?league=&gameId= with live detail for one game.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	league := r.URL.Query().Get("league")
	gameID := r.URL.Query().Get("gameId")
	if league == "" || gameID == "" {
		writeFailure(w, http.StatusBadRequest, "missing league or gameId", logger)
		return
	}

	game, err := h.svc.LiveGame(r.Context(), league, gameID)
	if err != nil {
		if errors.Is(err, games.ErrUnknownLeague) {
			writeFailure(w, http.StatusBadRequest, "unknown league", logger)
			return
		}
		if providers.KindOf(err) == providers.KindNotFound {
			writeFailure(w, http.StatusNotFound, providers.CodeOf(err), logger)
			return
		}
		writeFailure(w, http.StatusOK, providers.CodeOf(err), logger)
		return
	}
	writeOK(w, game, logger)
}

// Commentary answers /commentary?q= with recent commentary items.
func (h *Handler) Commentary(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromRequest(r, h.logger)
	query := r.URL.Query().Get("q")
	if query == "" {
		writeFailure(w, http.StatusBadRequest, "missing query", logger)
		return
	}
	writeOK(w, h.commentary.Search(r.Context(), query), logger)
}
