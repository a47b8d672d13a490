package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/aaronzipp/imposter/internal/protocol"
	"github.com/aaronzipp/imposter/internal/sse"
	"github.com/aaronzipp/imposter/internal/table"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsClient is one WebSocket connection to a table. Intents come in as
// envelopes; snapshots and errors go out the same way.
type wsClient struct {
	ctx   context.Context
	table *table.Table
	conn  *websocket.Conn
	send  chan []byte
	sub   chan sse.Message
}

// tableWS upgrades the connection and runs its pumps
func (ctx *Context) tableWS(w http.ResponseWriter, r *http.Request, t *table.Table) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	c := &wsClient{
		ctx:   r.Context(),
		table: t,
		conn:  conn,
		send:  make(chan []byte, 256),
		sub:   t.Hub().AddClient("ws:" + r.RemoteAddr),
	}

	// current state first, then every broadcast
	if snap, err := t.Snapshot(r.Context()); err == nil {
		c.sendEnvelope(protocol.StateEnvelope(snap))
	}

	go c.writePump()
	c.readPump()
}

// readPump applies incoming intents until the connection drops
func (c *wsClient) readPump() {
	defer func() {
		c.table.Hub().RemoveClient(c.sub)
		close(c.send)
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}
		var env protocol.Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("ws parse error: %v", err)
			c.sendError(err)
			continue
		}
		in, err := protocol.DecodeIntent(env)
		if err != nil {
			c.sendError(err)
			continue
		}
		// success is delivered by the hub broadcast
		if _, err := c.table.Apply(c.ctx, in); err != nil {
			c.sendError(err)
		}
	}
}

// writePump forwards hub broadcasts and direct replies to the socket
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case msg := <-c.sub:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, hubEnvelope(msg)); err != nil {
				return
			}
			if msg.Event == sse.EventTableClosed {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "table closed"))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) sendEnvelope(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("ws client on table %s: send buffer full, dropping message", c.table.ID)
	}
}

func (c *wsClient) sendError(err error) {
	c.sendEnvelope(protocol.ErrorEnvelope(err))
}

// hubEnvelope wraps a hub message, whose data is already JSON
func hubEnvelope(msg sse.Message) []byte {
	typ := protocol.MsgState
	if msg.Event != sse.EventState {
		typ = msg.Event
	}
	b, _ := json.Marshal(protocol.Envelope{Type: typ, Payload: json.RawMessage(msg.Data)})
	return b
}
