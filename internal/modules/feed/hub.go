package feed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client wraps a connection with a write lock. gorilla/websocket allows
// only one concurrent writer, and both the snapshot broadcaster and the
// keepalive ping write to the same connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) writeControl(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Hub tracks one live connection per user. A second connection from the
// same user replaces the first. All writes to a connection go through
// the hub so they serialize on the client's lock.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[userID]; exists && old != nil {
		_ = old.conn.Close()
	}

	h.clients[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[userID]; exists && cl != nil {
		_ = cl.conn.Close()
		delete(h.clients, userID)
	}
}

func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	cl, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil {
		return false
	}

	if err := cl.writeJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

// Ping sends a keepalive frame to the given connection. It reports false
// once the connection is gone or has been replaced by a reconnect, which
// tells the caller's ping loop to stop.
func (h *Hub) Ping(userID int64, conn *websocket.Conn) bool {
	h.mutex.RLock()
	cl, exists := h.clients[userID]
	h.mutex.RUnlock()

	if !exists || cl == nil || cl.conn != conn {
		return false
	}

	if err := cl.writeControl(websocket.PingMessage, nil); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

// ConnectedUsers snapshots the IDs with a live connection.
func (h *Hub) ConnectedUsers() []int64 {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	ids := make([]int64, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, cl := range h.clients {
		if cl != nil {
			_ = cl.conn.Close()
		}
		delete(h.clients, userID)
	}
}
