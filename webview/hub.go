package webview

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds every websocket write.
const writeTimeout = 3 * time.Second

// Hub tracks open stream connections for broadcasts.
// It is safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Add registers conn for broadcasts. Adding a conn twice is a no-op.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

// Remove unregisters conn; the caller still owns closing it.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Len returns the number of tracked connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends message to every connection tracked when it is called.
// Writes happen outside the lock, so a slow client delays only this call.
// Connections that fail to accept the message are dropped and closed.
// It returns how many received it.
func (h *Hub) Broadcast(message []byte) int {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	sent := 0
	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			h.Remove(conn)
			_ = conn.Close(websocket.StatusPolicyViolation, "write failed")
			continue
		}
		sent++
	}
	return sent
}
