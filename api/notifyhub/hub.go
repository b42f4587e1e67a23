package notifyhub

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/moyoez/uploadkit-go/types"
)

// Hub holds WebSocket connections and broadcasts widget/simulator events to
// all connected demo clients. Broadcast is reached from HTTP handlers, the
// upload-run goroutine, and preview-decode goroutines at the same time, and
// gorilla/websocket forbids concurrent writers, so every connection carries
// its own write mutex.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]*sync.Mutex
}

// New creates a new notify hub.
func New() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Register adds a WebSocket connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = &sync.Mutex{}
}

// Unregister removes a WebSocket connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends the event as JSON to all registered connections.
// Safe for concurrent use. Implements notify.Hub.
func (h *Hub) Broadcast(notification *types.Notification) {
	if notification == nil {
		return
	}
	payload, err := sonic.Marshal(notification)
	if err != nil {
		return
	}

	type target struct {
		conn    *websocket.Conn
		writeMu *sync.Mutex
	}
	h.mu.RLock()
	targets := make([]target, 0, len(h.conns))
	for c, wm := range h.conns {
		targets = append(targets, target{conn: c, writeMu: wm})
	}
	h.mu.RUnlock()

	for _, t := range targets {
		t.writeMu.Lock()
		_ = t.conn.WriteMessage(websocket.TextMessage, payload)
		t.writeMu.Unlock()
	}
}
