package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fastprodman/pockettrader/internal/apperr"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, body envelope) {
	if body == nil {
		body = envelope{}
	}

	body["status"] = "success"
	writeJSON(w, http.StatusOK, body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"status": "error", "message": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInsufficientInventory):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError maps an error kind to a status code. Storage failures are
// logged and reported without their cause.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, status, "internal error")

		return
	}

	writeError(w, status, err.Error())
}
