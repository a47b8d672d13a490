package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
)

func TestDecodeIntent(t *testing.T) {
	tests := []struct {
		env  Envelope
		want game.Intent
	}{
		{MustEnvelope(MsgSelectCategory, map[string]string{"name": "Food", "icon": "🍕"}), game.SelectCategory{Name: "Food", Icon: "🍕"}},
		{MustEnvelope(MsgToggleHardMode, map[string]bool{"enabled": true}), game.ToggleHardMode{Enabled: true}},
		{MustEnvelope(MsgRequestEvict, map[string]int{"player_index": 0}), game.RequestEvict{PlayerIndex: 0}},
		{Envelope{Type: MsgBackToCategories}, game.BackToCategories{}},
		{Envelope{Type: MsgStartRound}, game.StartRoundIntent{}},
		{Envelope{Type: MsgAdvanceCard}, game.AdvanceCard{}},
		{Envelope{Type: MsgRequestRestartRound}, game.RequestRestartRound{}},
		{Envelope{Type: MsgConfirmRestartRound}, game.ConfirmRestartRound{}},
		{Envelope{Type: MsgCancelRestartRound}, game.CancelRestartRound{}},
		{Envelope{Type: MsgContinueAfterElimination}, game.ContinueAfterElimination{}},
		{Envelope{Type: MsgNewGame}, game.NewGame{}},
	}
	for _, tt := range tests {
		got, err := DecodeIntent(tt.env)
		if err != nil {
			t.Fatalf("decode %s: %v", tt.env.Type, err)
		}
		if got != tt.want {
			t.Fatalf("decode %s = %#v, want %#v", tt.env.Type, got, tt.want)
		}
		if got.Kind() != tt.env.Type {
			t.Fatalf("kind %q does not match message type %q", got.Kind(), tt.env.Type)
		}
	}
}

func TestDecodeIntentErrors(t *testing.T) {
	if _, err := DecodeIntent(Envelope{Type: "dance"}); !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("error = %v, want ErrUnknownMessage", err)
	}
	if _, err := DecodeIntent(Envelope{Type: MsgSelectCategory}); !errors.Is(err, ErrBadPayload) {
		t.Fatal("expected error for missing payload")
	}
	if _, err := DecodeIntent(Envelope{Type: MsgRequestEvict, Payload: json.RawMessage(`{}`)}); !errors.Is(err, ErrBadPayload) {
		t.Fatal("expected error for missing player_index")
	}
	if _, err := DecodeIntent(Envelope{Type: MsgToggleHardMode, Payload: json.RawMessage(`{"enabled":"yes"}`)}); !errors.Is(err, ErrBadPayload) {
		t.Fatal("expected error for bad payload")
	}
}

func TestOutboundEnvelopes(t *testing.T) {
	env := ErrorEnvelope(game.ErrIntentNotAllowed)
	if env.Type != MsgError {
		t.Fatalf("type = %q, want %q", env.Type, MsgError)
	}
	var payload ErrorPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload.Message != game.ErrIntentNotAllowed.Error() {
		t.Fatalf("message = %q", payload.Message)
	}

	env = StateEnvelope(models.Snapshot{TableID: "abc", Version: 2})
	var snap models.Snapshot
	if err := json.Unmarshal(env.Payload, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if env.Type != MsgState || snap.TableID != "abc" || snap.Version != 2 {
		t.Fatalf("state envelope = %s %+v", env.Type, snap)
	}
}
