package game

import (
	"fmt"
	"slices"

	"github.com/aaronzipp/imposter/internal/models"
	"github.com/google/uuid"
)

// Roster is the ordered list of players at a table. Methods never mutate the
// receiver; Eliminate and Revive return a new Roster.
type Roster []models.Player

// NewRoster seats the given names in order with fresh player IDs
func NewRoster(names []string) Roster {
	r := make(Roster, 0, len(names))
	for _, name := range names {
		r = append(r, models.Player{ID: uuid.NewString(), Name: name})
	}
	return r
}

// Players returns a copy of the roster in seat order
func (r Roster) Players() []models.Player {
	return slices.Clone([]models.Player(r))
}

// ActiveIndices returns the seat indices of players still in the game, in seat order
func (r Roster) ActiveIndices() []int {
	active := make([]int, 0, len(r))
	for i, p := range r {
		if !p.IsEliminated {
			active = append(active, i)
		}
	}
	return active
}

// ActiveCount counts players that are not eliminated
func (r Roster) ActiveCount() int {
	n := 0
	for _, p := range r {
		if !p.IsEliminated {
			n++
		}
	}
	return n
}

// IsActive reports whether index is in range and not eliminated
func (r Roster) IsActive(index int) bool {
	return index >= 0 && index < len(r) && !r[index].IsEliminated
}

// Eliminate flags the player at index. Eliminating twice is an error, not a no-op.
func (r Roster) Eliminate(index int) (Roster, error) {
	if index < 0 || index >= len(r) {
		return nil, fmt.Errorf("eliminate %d of %d players: %w", index, len(r), ErrInvalidIndex)
	}
	if r[index].IsEliminated {
		return nil, fmt.Errorf("eliminate %d: already eliminated: %w", index, ErrInvalidIndex)
	}
	out := slices.Clone(r)
	out[index].IsEliminated = true
	return out, nil
}

// Revive clears every elimination flag (new game)
func (r Roster) Revive() Roster {
	out := slices.Clone(r)
	for i := range out {
		out[i].IsEliminated = false
	}
	return out
}
