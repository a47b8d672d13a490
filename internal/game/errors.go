package game

import "errors"

var (
	ErrInvalidIndex        = errors.New("invalid player index")
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrNoActivePlayers     = errors.New("no active players")
	ErrIntentNotAllowed    = errors.New("intent not allowed on this screen")
	ErrUnknownCategory     = errors.New("unknown category")
)
