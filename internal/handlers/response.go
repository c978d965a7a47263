package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// writeServiceError maps service and repository errors to HTTP responses
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "Session not found", logger)
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, repository.ErrMenuItemNotFound):
		WriteError(w, http.StatusNotFound, "Menu item not found", logger)
	case errors.Is(err, service.ErrItemUnavailable):
		WriteError(w, http.StatusConflict, "Menu item is not available", logger)
	case errors.Is(err, service.ErrInvalidQuantity):
		WriteError(w, http.StatusBadRequest, "Quantity must be between 1 and 999", logger)
	default:
		logger.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}

// sessionIDParam validates the {sessionId} URL parameter
func sessionIDParam(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "sessionId")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// itemIDParam parses the {itemId} URL parameter (integer, int64)
func itemIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
