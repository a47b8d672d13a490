package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/aaronzipp/imposter/internal/sse"
	"github.com/aaronzipp/imposter/internal/table"
)

// tableSSE streams a snapshot after every applied intent
func (ctx *Context) tableSSE(w http.ResponseWriter, r *http.Request, t *table.Table) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Subscribe before reading the initial snapshot so no update falls in between
	clientChan := t.Hub().AddClient(r.RemoteAddr)
	defer t.Hub().RemoveClient(clientChan)

	snap, err := t.Snapshot(r.Context())
	if err != nil {
		writeError(w, err, nil)
		return
	}
	initial, err := json.Marshal(snap)
	if err != nil {
		log.Printf("tableSSE: marshal snapshot: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventState, initial)
	flusher.Flush()

	if ctx.Debug {
		log.Printf("tableSSE: client %s connected to table %s, now have %d clients", r.RemoteAddr, t.ID, t.Hub().ClientCount())
	}

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Printf("tableSSE: client %s disconnected", r.RemoteAddr)
			return
		case msg := <-clientChan:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
			if msg.Event == sse.EventTableClosed {
				return
			}
		}
	}
}
