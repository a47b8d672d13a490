package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
	"github.com/aaronzipp/imposter/internal/protocol"
	"github.com/aaronzipp/imposter/internal/table"
)

type errorResponse struct {
	Error    string           `json:"error"`
	Snapshot *models.Snapshot `json:"snapshot,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error, snap *models.Snapshot) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error(), Snapshot: snap})
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, protocol.ErrUnknownMessage),
		errors.Is(err, protocol.ErrBadPayload),
		errors.Is(err, errBadRequest),
		errors.Is(err, game.ErrInvalidIndex),
		errors.Is(err, game.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrIntentNotAllowed),
		errors.Is(err, game.ErrInsufficientPlayers),
		errors.Is(err, game.ErrNoActivePlayers):
		return http.StatusConflict
	case errors.Is(err, table.ErrTableClosed):
		return http.StatusGone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
