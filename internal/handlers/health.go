package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	sessions func() int
}

// NewHealthHandler creates a new health handler. sessions reports the
// number of live sessions and may be nil.
func NewHealthHandler(logger *slog.Logger, sessions func() int) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		sessions: sessions,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Sessions  int       `json:"sessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
	}
	if h.sessions != nil {
		response.Sessions = h.sessions()
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
