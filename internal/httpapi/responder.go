package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sports-games-service/internal/domain"
	"sports-games-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

// writeOK wraps data in the success envelope.
func writeOK(w http.ResponseWriter, data any, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, domain.Ok(data), logger)
}

// writeFailure emits a failed envelope. Only boundary conditions (unknown
// team, malformed request, not found) use a non-200 status; absorbed upstream
// failures ride a 200 with ok=false.
func writeFailure(w http.ResponseWriter, status int, code string, logger *slog.Logger) {
	writeJSON(w, status, domain.Fail[any](code), logger)
}

func loggerFromRequest(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
