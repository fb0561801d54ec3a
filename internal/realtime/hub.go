package realtime

import (
	"sync"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/logger"
)

// Hub tracks the connected clients of this instance and the rooms they joined.
// Every connection is placed in its personal user room on Register.
type Hub struct {
	mutex   sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	h.clients[client] = struct{}{}
	h.joinLocked(client, domain.UserRoom(client.userID))
	total := len(h.clients)
	h.mutex.Unlock()

	logger.Log.Debug("WS connected", "user_id", client.userID, "total_clients", total)
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mutex.Lock()
	removed := h.removeLocked(client)
	total := len(h.clients)
	h.mutex.Unlock()

	if removed {
		logger.Log.Debug("WS disconnected", "user_id", client.userID, "total_clients", total)
	}
}

func (h *Hub) Join(client *Client, room string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; ok {
		h.joinLocked(client, room)
	}
}

func (h *Hub) Leave(client *Client, room string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.leaveLocked(client, room)
}

// InRoom reports whether client currently belongs to room.
func (h *Hub) InRoom(client *Client, room string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	_, ok := h.rooms[room][client]
	return ok
}

// Emit queues frame for every member of room except skip. Members whose buffer is
// full are disconnected rather than slowing the sender down.
func (h *Hub) Emit(room string, frame []byte, skip *Client) int {
	if h == nil {
		return 0
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()

	delivered := 0
	var slow []*Client
	for c := range h.rooms[room] {
		if c == skip {
			continue
		}
		select {
		case c.send <- frame:
			delivered++
		default:
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		h.removeLocked(c)
		logger.Log.Warn("WS client dropped", "user_id", c.userID, "reason", "buffer_full")
	}
	return delivered
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) joinLocked(client *Client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}
}

func (h *Hub) leaveLocked(client *Client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) removeLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	for room := range h.rooms {
		h.leaveLocked(client, room)
	}
	close(client.send)
	return true
}
