package models

// ImposterLabel is what the imposter's card shows outside of hard mode
const ImposterLabel = "IMPOSTER"

// Category is a word category picked on the selection screen
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// GameCard is the card one player looks at during the card view
type GameCard struct {
	PlayerIndex int    `json:"player_index"`
	Word        string `json:"word,omitempty"`
	IsImposter  bool   `json:"is_imposter"`
}

// CardFace is what the presentation layer shows when a card is flipped
type CardFace struct {
	Word  string `json:"word"`
	Label string `json:"label,omitempty"`
}

// Face returns the visible side of the card. In hard mode the imposter gets a
// blank card with no label, so they cannot tell they are the imposter.
func (c GameCard) Face(hideIdentity bool) CardFace {
	if !c.IsImposter {
		return CardFace{Word: c.Word}
	}
	if hideIdentity {
		return CardFace{}
	}
	return CardFace{Label: ImposterLabel}
}
