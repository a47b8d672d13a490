package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaronzipp/imposter/internal/game"
)

// Message types: Server → Client
const (
	MsgState = "state"
	MsgError = "error"
)

// Message types: Client → Server. These match game.Intent Kind values.
const (
	MsgSelectCategory           = "select_category"
	MsgToggleHardMode           = "toggle_hard_mode"
	MsgBackToCategories         = "back_to_categories"
	MsgStartRound               = "start_round"
	MsgAdvanceCard              = "advance_card"
	MsgRequestEvict             = "request_evict"
	MsgRequestRestartRound      = "request_restart_round"
	MsgConfirmRestartRound      = "confirm_restart_round"
	MsgCancelRestartRound       = "cancel_restart_round"
	MsgContinueAfterElimination = "continue_after_elimination"
	MsgNewGame                  = "new_game"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrBadPayload     = errors.New("bad payload")
)

// ErrorPayload is sent to a client whose intent was rejected
type ErrorPayload struct {
	Message string `json:"message"`
}

// DecodeIntent turns a client envelope into a typed intent
func DecodeIntent(env Envelope) (game.Intent, error) {
	switch env.Type {
	case MsgSelectCategory:
		return decodePayload[game.SelectCategory](env)
	case MsgToggleHardMode:
		return decodePayload[game.ToggleHardMode](env)
	case MsgRequestEvict:
		var p struct {
			PlayerIndex *int `json:"player_index"`
		}
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w: %w", env.Type, ErrBadPayload, err)
		}
		if p.PlayerIndex == nil {
			return nil, fmt.Errorf("decode %s: player_index is required: %w", env.Type, ErrBadPayload)
		}
		return game.RequestEvict{PlayerIndex: *p.PlayerIndex}, nil
	case MsgBackToCategories:
		return game.BackToCategories{}, nil
	case MsgStartRound:
		return game.StartRoundIntent{}, nil
	case MsgAdvanceCard:
		return game.AdvanceCard{}, nil
	case MsgRequestRestartRound:
		return game.RequestRestartRound{}, nil
	case MsgConfirmRestartRound:
		return game.ConfirmRestartRound{}, nil
	case MsgCancelRestartRound:
		return game.CancelRestartRound{}, nil
	case MsgContinueAfterElimination:
		return game.ContinueAfterElimination{}, nil
	case MsgNewGame:
		return game.NewGame{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", env.Type, ErrUnknownMessage)
	}
}

func decodePayload[T game.Intent](env Envelope) (game.Intent, error) {
	var v T
	if len(env.Payload) == 0 {
		return nil, fmt.Errorf("decode %s: missing payload: %w", env.Type, ErrBadPayload)
	}
	if err := json.Unmarshal(env.Payload, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", env.Type, ErrBadPayload, err)
	}
	return v, nil
}
