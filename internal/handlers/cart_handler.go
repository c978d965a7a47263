package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/service"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetCart handles GET /api/session/{sessionId}/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.log)
		return
	}

	summary, err := h.cartService.GetCart(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// AddItem handles POST /api/session/{sessionId}/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.log)
		return
	}

	var req models.AddCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode add-to-cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.cartService.AddItem(r.Context(), sessionID, req)
	if err != nil {
		h.log.Info("failed to add item to cart", "session_id", sessionID, "itemId", req.ItemID, "error", err)
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
	h.log.Debug("item added to cart", "session_id", sessionID, "itemId", req.ItemID, "cart_count", summary.Count)
}

// UpdateItem handles PATCH /api/session/{sessionId}/cart/items/{itemId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.log)
		return
	}
	itemID, ok := itemIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req models.UpdateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode cart update request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	summary, err := h.cartService.UpdateItem(r.Context(), sessionID, itemID, req)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// RemoveItem handles DELETE /api/session/{sessionId}/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.log)
		return
	}
	itemID, ok := itemIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	summary, err := h.cartService.RemoveItem(r.Context(), sessionID, itemID)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}

// ClearCart handles DELETE /api/session/{sessionId}/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.log)
		return
	}

	summary, err := h.cartService.Clear(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summary, h.log)
}
