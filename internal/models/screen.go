package models

// ScreenKind names the screen currently shown on the device
type ScreenKind string

const (
	ScreenCategorySelection ScreenKind = "category_selection"
	ScreenCategoryReveal    ScreenKind = "category_reveal"
	ScreenCardView          ScreenKind = "card_view"
	ScreenVoting            ScreenKind = "voting"
	ScreenElimination       ScreenKind = "elimination"
	ScreenGameOver          ScreenKind = "game_over"
)

// Screen is the closed set of game screens. Only the types in this file
// implement it.
type Screen interface {
	Kind() ScreenKind
	screen()
}

type CategorySelection struct{}

type CategoryReveal struct {
	Category Category
}

type CardView struct {
	CurrentPlayerIndex int
}

type Voting struct{}

type Elimination struct {
	EliminatedIndex int
	WasImposter     bool
}

// GameOver is reached once the imposter is caught or too few players remain
type GameOver struct {
	ImposterCaught bool
	ImposterIndex  int
}

func (CategorySelection) Kind() ScreenKind { return ScreenCategorySelection }
func (CategoryReveal) Kind() ScreenKind    { return ScreenCategoryReveal }
func (CardView) Kind() ScreenKind          { return ScreenCardView }
func (Voting) Kind() ScreenKind            { return ScreenVoting }
func (Elimination) Kind() ScreenKind       { return ScreenElimination }
func (GameOver) Kind() ScreenKind          { return ScreenGameOver }

func (CategorySelection) screen() {}
func (CategoryReveal) screen()    {}
func (CardView) screen()          {}
func (Voting) screen()            {}
func (Elimination) screen()       {}
func (GameOver) screen()          {}

// ScreenView is the flattened JSON form of a Screen
type ScreenView struct {
	Kind               ScreenKind `json:"kind"`
	Category           *Category  `json:"category,omitempty"`
	CurrentPlayerIndex *int       `json:"current_player_index,omitempty"`
	CardHolderIndex    *int       `json:"card_holder_index,omitempty"`
	EliminatedIndex    *int       `json:"eliminated_index,omitempty"`
	WasImposter        *bool      `json:"was_imposter,omitempty"`
	ImposterCaught     *bool      `json:"imposter_caught,omitempty"`
	ImposterIndex      *int       `json:"imposter_index,omitempty"`
}

// ViewOf flattens a screen for the wire
func ViewOf(s Screen) ScreenView {
	v := ScreenView{Kind: s.Kind()}
	switch s := s.(type) {
	case CategoryReveal:
		c := s.Category
		v.Category = &c
	case CardView:
		v.CurrentPlayerIndex = &s.CurrentPlayerIndex
	case Elimination:
		v.EliminatedIndex = &s.EliminatedIndex
		v.WasImposter = &s.WasImposter
	case GameOver:
		v.ImposterCaught = &s.ImposterCaught
		// only revealed once the game is over
		v.ImposterIndex = &s.ImposterIndex
	}
	return v
}
