package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
)

// SessionHandler handles the lifecycle of ordering sessions
type SessionHandler struct {
	registry    *session.Registry
	menuService *service.MenuService
	logger      *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(registry *session.Registry, menuService *service.MenuService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		registry:    registry,
		menuService: menuService,
		logger:      logger,
	}
}

// CreateSessionResponse is returned when a session starts
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.registry.Create()

	WriteJSON(w, http.StatusCreated, CreateSessionResponse{SessionID: s.ID}, h.logger)
	h.logger.Info("session started", "session_id", s.ID)
}

// GetSession handles GET /api/session/{sessionId}
// Returns the full state snapshot with every derived view
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}

	snap, err := h.menuService.Snapshot(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, snap, h.logger)
}

// DeleteSession handles DELETE /api/session/{sessionId}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}

	if err := h.registry.Delete(sessionID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.logger.Info("session ended", "session_id", sessionID)
}
