package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Health handles GET /api/health
func (h *HandlerProvider) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.svc.DB.PingContext(ctx)
	if err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, envelope{"status": "error", "message": "database unavailable"})

		return
	}

	writeSuccess(w, envelope{"database": "ok"})
}
