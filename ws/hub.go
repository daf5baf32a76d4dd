package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub keeps track of dashboard subscriber connections and fans booking
// events out to them.
type Hub struct {
	mu          sync.RWMutex
	writeMu     sync.Mutex                 // serializes writes; gorilla allows one writer per conn
	connections map[string]*websocket.Conn // clientID -> conn
}

func NewHub() *Hub {
	return &Hub{connections: make(map[string]*websocket.Conn)}
}

// Register adds a subscriber connection and returns its client id.
func (h *Hub) Register(conn *websocket.Conn) string {
	clientID := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[clientID] = conn
	return clientID
}

// Unregister removes a subscriber connection.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.connections[clientID]; ok {
		_ = conn.Close()
		delete(h.connections, clientID)
	}
}

// Broadcast sends a text message to every subscriber. Write failures drop
// only the affected client.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mu.RUnlock()

	h.writeMu.Lock()
	var failed []string
	for id, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			failed = append(failed, id)
		}
	}
	h.writeMu.Unlock()

	for _, id := range failed {
		h.Unregister(id)
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
