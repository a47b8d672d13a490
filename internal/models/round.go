package models

import "slices"

// RoundState holds everything that lives for one round only (ephemeral)
type RoundState struct {
	ImposterIndex int        `json:"imposter_index"`
	Category      *Category  `json:"category,omitempty"`
	Cards         []GameCard `json:"cards"`
}

// Clone returns a deep copy so transitions never share slices with the committed state
func (r RoundState) Clone() RoundState {
	out := RoundState{
		ImposterIndex: r.ImposterIndex,
		Cards:         slices.Clone(r.Cards),
	}
	if r.Category != nil {
		c := *r.Category
		out.Category = &c
	}
	return out
}
