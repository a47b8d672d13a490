package game

import (
	"fmt"

	"github.com/aaronzipp/imposter/internal/models"
)

// State is everything a table knows between two intents
type State struct {
	Screen               models.Screen
	Roster               Roster
	Round                models.RoundState
	StartingPlayerIndex  int
	HideImposterIdentity bool
	RestartPending       bool
}

// Env carries the collaborators a transition may call into
type Env struct {
	Words    WordSupplier
	Rand     Rand
	Rotation RotationPolicy
}

// NewState seats the roster on the category selection screen
func NewState(roster Roster) State {
	return State{
		Screen: models.CategorySelection{},
		Roster: roster.Players(),
		Round:  models.RoundState{Cards: []models.GameCard{}},
	}
}

// Clone returns a copy that shares no slices with s
func (s State) Clone() State {
	out := s
	out.Roster = s.Roster.Players()
	out.Round = s.Round.Clone()
	return out
}

// Transition applies one intent and returns the next state. s is never
// modified, so a failed intent leaves the caller's state exactly as it was.
func Transition(s State, in Intent, env Env) (State, error) {
	next := s.Clone()

	if next.RestartPending {
		out, err := restartTransition(next, in, env)
		if err != nil {
			return s, err
		}
		return out, nil
	}

	switch screen := next.Screen.(type) {
	case models.CategorySelection:
		switch in := in.(type) {
		case SelectCategory:
			category := models.Category{Name: in.Name, Icon: in.Icon}
			round, err := StartRound(category, next.Roster, env.Words, env.Rand)
			if err != nil {
				return s, err
			}
			next.Round = round
			next.Screen = models.CategoryReveal{Category: category}
			return next, nil
		case NewGame:
			return newGame(next), nil
		}

	case models.CategoryReveal:
		switch in := in.(type) {
		case BackToCategories:
			next.Screen = models.CategorySelection{}
			return next, nil
		case StartRoundIntent:
			next.Screen = models.CardView{CurrentPlayerIndex: 0}
			return next, nil
		case ToggleHardMode:
			next.HideImposterIdentity = in.Enabled
			return next, nil
		}

	case models.CardView:
		if _, ok := in.(AdvanceCard); ok {
			if screen.CurrentPlayerIndex+1 < next.Roster.ActiveCount() {
				next.Screen = models.CardView{CurrentPlayerIndex: screen.CurrentPlayerIndex + 1}
			} else {
				next.Screen = models.Voting{}
			}
			return next, nil
		}

	case models.Voting:
		switch in := in.(type) {
		case RequestEvict:
			if !next.Roster.IsActive(in.PlayerIndex) {
				return s, fmt.Errorf("evict %d: not an active player: %w", in.PlayerIndex, ErrInvalidIndex)
			}
			roster, err := next.Roster.Eliminate(in.PlayerIndex)
			if err != nil {
				return s, err
			}
			outcome := ResolveEviction(in.PlayerIndex, next.Round.ImposterIndex)
			next.Roster = roster
			next.Screen = models.Elimination{
				EliminatedIndex: outcome.EliminatedIndex,
				WasImposter:     outcome.WasImposter,
			}
			return next, nil
		case RequestRestartRound:
			next.RestartPending = true
			return next, nil
		}

	case models.Elimination:
		if _, ok := in.(ContinueAfterElimination); ok {
			switch {
			case screen.WasImposter:
				next.Screen = models.GameOver{ImposterCaught: true, ImposterIndex: next.Round.ImposterIndex}
			case next.Roster.ActiveCount() < MinPlayers:
				next.Screen = models.GameOver{ImposterCaught: false, ImposterIndex: next.Round.ImposterIndex}
			default:
				next.Screen = models.Voting{}
			}
			return next, nil
		}

	case models.GameOver:
		if _, ok := in.(NewGame); ok {
			next = rotate(next, env)
			return newGame(next), nil
		}

	default:
		return s, fmt.Errorf("unhandled screen %T", screen)
	}

	return s, notAllowed(s, in)
}

func restartTransition(next State, in Intent, env Env) (State, error) {
	switch in.(type) {
	case ConfirmRestartRound:
		next = rotate(next, env)
		next.RestartPending = false
		next.Round = ResetRound(next.Round)
		next.Screen = models.CategorySelection{}
		return next, nil
	case CancelRestartRound:
		next.RestartPending = false
		return next, nil
	}
	return next, fmt.Errorf("%s while restart confirmation pending: %w", in.Kind(), ErrIntentNotAllowed)
}

// rotate moves the starting seat once a played round is over
func rotate(next State, env Env) State {
	next.StartingPlayerIndex = env.Rotation.Next(next.StartingPlayerIndex, len(next.Roster), env.Rand)
	return next
}

func newGame(next State) State {
	next.Roster = next.Roster.Revive()
	next.Round = ResetRound(next.Round)
	next.RestartPending = false
	next.Screen = models.CategorySelection{}
	return next
}

func notAllowed(s State, in Intent) error {
	return fmt.Errorf("%s on %s: %w", in.Kind(), s.Screen.Kind(), ErrIntentNotAllowed)
}
