package game

import "github.com/aaronzipp/imposter/internal/models"

// ResetRound drops the cards and the category. Elimination flags live on the
// roster and hard mode on the table, so neither is touched here.
func ResetRound(round models.RoundState) models.RoundState {
	return models.RoundState{
		ImposterIndex: round.ImposterIndex,
		Category:      nil,
		Cards:         []models.GameCard{},
	}
}
