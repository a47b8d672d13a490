package game

// Intent is something the player tapped. The set is closed: only the types
// below implement it.
type Intent interface {
	Kind() string
	intent()
}

type SelectCategory struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ToggleHardMode struct {
	Enabled bool `json:"enabled"`
}

type BackToCategories struct{}

type StartRoundIntent struct{}

type AdvanceCard struct{}

type RequestEvict struct {
	PlayerIndex int `json:"player_index"`
}

type RequestRestartRound struct{}

type ConfirmRestartRound struct{}

type CancelRestartRound struct{}

type ContinueAfterElimination struct{}

type NewGame struct{}

func (SelectCategory) Kind() string           { return "select_category" }
func (ToggleHardMode) Kind() string           { return "toggle_hard_mode" }
func (BackToCategories) Kind() string         { return "back_to_categories" }
func (StartRoundIntent) Kind() string         { return "start_round" }
func (AdvanceCard) Kind() string              { return "advance_card" }
func (RequestEvict) Kind() string             { return "request_evict" }
func (RequestRestartRound) Kind() string      { return "request_restart_round" }
func (ConfirmRestartRound) Kind() string      { return "confirm_restart_round" }
func (CancelRestartRound) Kind() string       { return "cancel_restart_round" }
func (ContinueAfterElimination) Kind() string { return "continue_after_elimination" }
func (NewGame) Kind() string                  { return "new_game" }

func (SelectCategory) intent()           {}
func (ToggleHardMode) intent()           {}
func (BackToCategories) intent()         {}
func (StartRoundIntent) intent()         {}
func (AdvanceCard) intent()              {}
func (RequestEvict) intent()             {}
func (RequestRestartRound) intent()      {}
func (ConfirmRestartRound) intent()      {}
func (CancelRestartRound) intent()       {}
func (ContinueAfterElimination) intent() {}
func (NewGame) intent()                  {}
