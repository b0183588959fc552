// README: In-process broadcast hub for live driver positions.
package relay

import "sync"

// Client is one open connection. Send must not block; it reports false once
// the connection is closed so the hub can silently skip it.
type Client interface {
	Send(msg Message) bool
}

// Hub relays driver position updates to every open connection. There is no
// persistence, no replay on reconnect, and no acknowledgment.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
	last    *DriverLocation
}

func NewHub() *Hub {
	return &Hub{clients: map[Client]struct{}{}}
}

func (h *Hub) Register(c Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Publish overwrites the last-known location and fans it out to all open
// connections. Sends to closed connections are skipped.
func (h *Hub) Publish(loc DriverLocation) {
	h.mu.Lock()
	cp := loc
	h.last = &cp
	clients := make([]Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	msg := loc.message()
	for _, c := range clients {
		_ = c.Send(msg)
	}
}

// Last returns the most recent published location, or nil before the first
// update.
func (h *Hub) Last() *DriverLocation {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.last == nil {
		return nil
	}
	cp := *h.last
	return &cp
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
