package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/metrics"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/store"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// SnapshotMessage is pushed to WebSocket subscribers
type SnapshotMessage struct {
	Type     string         `json:"type"`
	Snapshot store.Snapshot `json:"snapshot"`
}

// SubscribeHandler pushes store snapshots to a UI over WebSocket
type SubscribeHandler struct {
	registry *session.Registry
	upgrader websocket.Upgrader
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewSubscribeHandler creates a new subscribe handler. checkOrigin may be
// nil to accept any origin.
func NewSubscribeHandler(registry *session.Registry, checkOrigin func(*http.Request) bool, m *metrics.Metrics, logger *slog.Logger) *SubscribeHandler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &SubscribeHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
		metrics: m,
		logger:  logger,
	}
}

// Subscribe handles GET /api/session/{sessionId}/ws
// Sends the current snapshot, then a fresh snapshot after every change to
// the session's state. Bursts of changes are coalesced into one message.
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid session ID", h.logger)
		return
	}
	sess, err := h.registry.Get(sessionID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written an HTTP error
		h.logger.Warn("websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	h.metrics.WebSocketOpened()
	defer h.metrics.WebSocketClosed()

	changed := make(chan struct{}, 1)
	var unsubscribe func()
	sess.Do(func(st *store.Store) {
		unsubscribe = st.Subscribe(func(store.Change) {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	})
	defer sess.Do(func(*store.Store) { unsubscribe() })

	closed := make(chan struct{})
	go h.readPump(conn, sess, closed)

	send := func() error {
		var snap store.Snapshot
		sess.Do(func(st *store.Store) {
			snap = st.Snapshot()
		})
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(SnapshotMessage{Type: "snapshot", Snapshot: snap})
	}

	if err := send(); err != nil {
		h.logger.Warn("failed to send initial snapshot", "session_id", sessionID, "error", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-changed:
			if err := send(); err != nil {
				h.logger.Info("websocket write failed", "session_id", sessionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-sess.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		case <-closed:
			return
		}
	}
}

// readPump discards client messages and closes done when the peer goes away.
// Pongs and client messages keep the session alive.
func (h *SubscribeHandler) readPump(conn *websocket.Conn, sess *session.Session, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		sess.Touch()
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		sess.Touch()
	}
}
