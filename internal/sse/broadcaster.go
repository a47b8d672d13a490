package sse

import (
	"log"
	"sync"
	"time"

	"github.com/aaronzipp/imposter/internal/game"
)

// Hub fans messages out to every subscriber of one table. SSE streams and
// WebSocket connections both subscribe through it.
type Hub struct {
	// Debug turns on per-message logging. Set it before the hub is shared.
	Debug bool

	mu      sync.RWMutex
	clients map[chan Message]string // channel -> subscriber label
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Message]string)}
}

// AddClient registers a new subscriber and returns its channel
func (h *Hub) AddClient(label string) chan Message {
	client := make(chan Message, game.SSEBufferSize)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = label
	if h.Debug {
		log.Printf("sse: client %s added, now have %d clients", label, len(h.clients))
	}
	return client
}

// RemoveClient unregisters a subscriber. The channel is not closed since a
// Broadcast may still be sending to its copy of the client list.
func (h *Hub) RemoveClient(client chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	log.Printf("sse: client removed, now have %d total clients", len(h.clients))
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a message to all subscribers, giving up on slow ones after
// SSETimeoutSeconds.
func (h *Hub) Broadcast(event, data string) {
	h.mu.RLock()
	clients := make([]chan Message, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if h.Debug {
		log.Printf("broadcastSSE: event=%s to %d clients", event, len(clients))
	}

	// Send messages WITHOUT holding the lock
	msg := Message{Event: event, Data: data}
	successCount := 0
	for _, client := range clients {
		select {
		case client <- msg:
			successCount++
		case <-time.After(time.Duration(game.SSETimeoutSeconds) * time.Second):
			if h.Debug {
				log.Printf("broadcastSSE: timeout sending to client")
			}
		}
	}
	if h.Debug {
		log.Printf("broadcastSSE: sent to %d/%d clients successfully", successCount, len(clients))
	}
}
