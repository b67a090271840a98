package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one realtime message to a client. Record and game-state changes
// carry {previous, next} snapshots; banner notifications ride in Payload.
type Event struct {
	Kind     string `json:"kind"`
	Table    string `json:"table,omitempty"`
	Previous any    `json:"previous,omitempty"`
	Next     any    `json:"next,omitempty"`
	Payload  any    `json:"payload,omitempty"`
}

type WSClient struct {
	ID     string
	UserID uint
	Conn   *websocket.Conn
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(userID uint, ev Event) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// BroadcastAll sends to every connected client, e.g. pot changes both
// participants watch.
func (h *RealtimeHub) BroadcastAll(ev Event) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, set := range h.clients {
		for c := range set {
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
		}
	}
}
