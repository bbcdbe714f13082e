package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
	"github.com/billowria/bookshorts/internal/service"
)

// envelope provides a consistent JSON response structure.
type envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, data any, l *logger.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{Success: status < 400, Data: data}); err != nil {
		l.Error("failed to encode response", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string, l *logger.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope{Success: false, Error: message}); err != nil {
		l.Error("failed to encode error response", "error", err.Error())
	}
}

// handleError maps domain errors to HTTP status codes. Unknown errors
// become 500 with a generic message so internals never leak.
func handleError(w http.ResponseWriter, err error, l *logger.Logger) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", l)
	case errors.Is(err, model.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error(), l)
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error(), l)
	case errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMismatch):
		writeError(w, http.StatusUnauthorized, "invalid refresh token", l)
	case errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidContentType):
		writeError(w, http.StatusBadRequest, err.Error(), l)
	default:
		l.Error("unhandled error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error", l)
	}
}
