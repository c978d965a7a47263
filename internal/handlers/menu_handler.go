package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles catalog and filter HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenu handles GET /api/menu
// Returns the whole catalog in catalog order
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// ListCategories handles GET /api/menu/categories
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}

// GetItem handles GET /api/menu/{itemId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Menu item not found
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		h.logger.Warn("invalid menu item ID format", "itemId", chi.URLParam(r, "itemId"))
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
		}
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

// FilteredMenu handles GET /api/session/{sessionId}/menu
func (h *MenuHandler) FilteredMenu(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}

	items, err := h.service.FilteredMenu(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// GetFilter handles GET /api/session/{sessionId}/filter
func (h *MenuHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}

	filter, err := h.service.GetFilter(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, filter, h.logger)
}

// SetFilter handles PUT /api/session/{sessionId}/filter
func (h *MenuHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}

	var req models.FilterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode filter request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	filter, err := h.service.SetFilter(r.Context(), sessionID, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, filter, h.logger)
}
