package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event is pushed to connected dashboards so they re-fetch branding or
// billing state without polling.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

const (
	EventBrandingUpdated     = "branding.updated"
	EventSubscriptionUpdated = "subscription.updated"
)

// Hub tracks websocket connections grouped by workspace and fans events
// out to them. Connections are registered by the websocket handler and
// removed when their read loop exits.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]struct{})}
}

func (h *Hub) Register(workspaceID string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[workspaceID] == nil {
		h.conns[workspaceID] = make(map[*websocket.Conn]struct{})
	}
	h.conns[workspaceID][c] = struct{}{}
}

func (h *Hub) Unregister(workspaceID string, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[workspaceID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.conns, workspaceID)
		}
	}
}

// Broadcast sends the event to every connection in the workspace. Writes
// happen under the lock; failed connections are dropped on their next read.
func (h *Hub) Broadcast(workspaceID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal realtime event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns[workspaceID] {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Debug("realtime write failed", "workspace_id", workspaceID, "error", err)
		}
	}
}

// Serve runs the connection's read loop until the client disconnects.
// Inbound messages are ignored; the socket is push only.
func (h *Hub) Serve(workspaceID string, c *websocket.Conn) {
	h.Register(workspaceID, c)
	defer func() {
		h.Unregister(workspaceID, c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
