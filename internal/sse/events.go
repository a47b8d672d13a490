package sse

// SSE event type constants
const (
	EventState       = "state"
	EventTableClosed = "table-closed"
)

// Message is one event pushed to a subscriber
type Message struct {
	Event string // Event type (e.g., "state", "table-closed")
	Data  string // JSON payload
}
