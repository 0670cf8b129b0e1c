package ws

import (
	"context"
	"sync"
	"time"

	"artbook_backend/internal/logger"
)

// Event is pushed to every client watching an application.
type Event struct {
	Type          string    `json:"type"`
	ApplicationID string    `json:"application_id"`
	Data          any       `json:"data,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}

// Hub fans application events out to websocket clients. Run owns the
// client set; ClientCount may be read from any goroutine.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is done, then
// closes every client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return nil

		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.ApplicationID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.ApplicationID] = set
			}
			set[client] = struct{}{}
			h.mu.Unlock()
			logger.Debug("WebSocket client registered", "application_id", client.ApplicationID)

		case client := <-h.unregister:
			h.remove(client)

		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

// Publish queues an event for the clients of applicationID. It never
// blocks; events are dropped when the queue is full.
func (h *Hub) Publish(applicationID, eventType string, payload any) {
	ev := Event{
		Type:          eventType,
		ApplicationID: applicationID,
		Data:          payload,
		SentAt:        time.Now().UTC(),
	}
	select {
	case h.broadcast <- ev:
	default:
		logger.Warn("WebSocket broadcast queue full, event dropped", "application_id", applicationID, "type", eventType)
	}
}

func (h *Hub) deliver(ev Event) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients[ev.ApplicationID] {
		select {
		case client.send <- ev:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		logger.Warn("WebSocket client too slow, disconnecting", "application_id", client.ApplicationID)
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[client.ApplicationID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	close(client.send)
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.ApplicationID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, set := range h.clients {
		for client := range set {
			close(client.send)
		}
		delete(h.clients, id)
	}
}

// ClientCount returns the number of clients watching applicationID, or
// every client when applicationID is empty.
func (h *Hub) ClientCount(applicationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if applicationID != "" {
		return len(h.clients[applicationID])
	}
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
