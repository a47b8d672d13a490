package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/aaronzipp/imposter/internal/models"
)

// Envelope frames every message on the intents endpoint and the table socket.
// Inbound, Type is an intent kind; outbound it is MsgState or MsgError.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewEnvelope(typ string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", typ, err)
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// MustEnvelope panics if payload does not encode. Only for payloads built
// from plain structs, like intents and snapshots.
func MustEnvelope(typ string, payload any) Envelope {
	e, err := NewEnvelope(typ, payload)
	if err != nil {
		panic(err)
	}
	return e
}

// StateEnvelope carries a table snapshot
func StateEnvelope(snap models.Snapshot) Envelope {
	return MustEnvelope(MsgState, snap)
}

// ErrorEnvelope tells one client its intent was rejected
func ErrorEnvelope(err error) Envelope {
	return MustEnvelope(MsgError, ErrorPayload{Message: err.Error()})
}
