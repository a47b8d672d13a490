package game

import "fmt"

// EliminationOutcome is the result of evicting a player
type EliminationOutcome struct {
	EliminatedIndex int
	WasImposter     bool
}

// DiscussionOrder rotates the active seats left by start. The rotation is
// taken modulo the number of active players, never the full roster.
func DiscussionOrder(active []int, start int) ([]int, error) {
	n := len(active)
	if n == 0 {
		return nil, fmt.Errorf("discussion order: %w", ErrNoActivePlayers)
	}
	offset := ((start % n) + n) % n

	order := make([]int, n)
	for i := range n {
		order[i] = active[(offset+i)%n]
	}
	return order, nil
}

// ResolveEviction decides whether the evicted player was the imposter.
// The caller has already checked the target against the roster.
func ResolveEviction(target, imposter int) EliminationOutcome {
	return EliminationOutcome{
		EliminatedIndex: target,
		WasImposter:     target == imposter,
	}
}
