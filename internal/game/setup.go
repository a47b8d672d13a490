package game

import (
	"fmt"

	"github.com/aaronzipp/imposter/internal/models"
)

// Rand is the random source used for imposter selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// WordSupplier maps a category name to the secret word for a round
type WordSupplier interface {
	Word(category string) (string, error)
}

// StartRound picks the imposter and deals one card per seat. Only active
// players can be picked; with nobody eliminated that is every seat.
func StartRound(category models.Category, roster Roster, words WordSupplier, rng Rand) (models.RoundState, error) {
	if len(roster) < MinPlayers {
		return models.RoundState{}, fmt.Errorf("start round with %d players: %w", len(roster), ErrInsufficientPlayers)
	}
	active := roster.ActiveIndices()
	if len(active) < MinPlayers {
		return models.RoundState{}, fmt.Errorf("start round with %d active players: %w", len(active), ErrInsufficientPlayers)
	}

	word, err := words.Word(category.Name)
	if err != nil {
		return models.RoundState{}, fmt.Errorf("word for %q: %w", category.Name, err)
	}

	imposter := active[rng.IntN(len(active))]

	cards := make([]models.GameCard, len(roster))
	for i := range roster {
		cards[i] = models.GameCard{PlayerIndex: i}
		if i == imposter {
			cards[i].IsImposter = true
			continue
		}
		cards[i].Word = word
	}

	c := category
	return models.RoundState{
		ImposterIndex: imposter,
		Category:      &c,
		Cards:         cards,
	}, nil
}
