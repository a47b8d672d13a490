package game

import (
	"github.com/aaronzipp/imposter/internal/models"
)

// Machine owns one table's State and commits a transition only when it
// succeeds. It is not safe for concurrent use; a table goroutine owns it.
type Machine struct {
	state   State
	env     Env
	version int
}

// NewMachine starts a table on the category selection screen
func NewMachine(roster Roster, env Env) *Machine {
	return &Machine{
		state: NewState(roster),
		env:   env,
	}
}

// Apply runs one intent to completion
func (m *Machine) Apply(in Intent) error {
	next, err := Transition(m.state, in, m.env)
	if err != nil {
		return err
	}
	m.state = next
	m.version++
	return nil
}

// State returns a copy of the current state
func (m *Machine) State() State {
	return m.state.Clone()
}

// Version counts committed intents
func (m *Machine) Version() int {
	return m.version
}

// Snapshot builds the read-only view for the presentation layer
func (m *Machine) Snapshot() models.Snapshot {
	s := m.state
	view := models.ViewOf(s.Screen)

	if cv, ok := s.Screen.(models.CardView); ok {
		active := s.Roster.ActiveIndices()
		if cv.CurrentPlayerIndex < len(active) {
			holder := active[cv.CurrentPlayerIndex]
			view.CardHolderIndex = &holder
		}
	}

	faces := make([]models.CardFace, 0, len(s.Round.Cards))
	for _, c := range s.Round.Cards {
		faces = append(faces, c.Face(s.HideImposterIdentity))
	}

	snap := models.Snapshot{
		Version:              m.version,
		Screen:               view,
		Players:              s.Roster.Players(),
		Cards:                faces,
		HideImposterIdentity: s.HideImposterIdentity,
		RestartPending:       s.RestartPending,
	}
	if s.Round.Category != nil {
		c := *s.Round.Category
		snap.Category = &c
	}
	if _, ok := s.Screen.(models.Voting); ok {
		// the only error is an empty table, which the voting screen never has
		if order, err := DiscussionOrder(s.Roster.ActiveIndices(), s.StartingPlayerIndex); err == nil {
			snap.DiscussionOrder = order
		}
	}
	return snap
}
