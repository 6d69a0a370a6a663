package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RealtimeHub fans today-summary frames out to connected dashboard clients.
// Single user, so there is one flat connection set.
type RealtimeHub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *RealtimeHub) Register(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	_ = c.Close()
}

// BroadcastSummary pushes the updated today summary to every client. Write
// failures are left to the per-connection read loop to detect and clean up.
func (h *RealtimeHub) BroadcastSummary(summary TodaySummary) {
	msg, _ := json.Marshal(map[string]any{
		"kind":    "summary.updated",
		"summary": summary,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
