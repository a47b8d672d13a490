package models

// Snapshot is the read-only view handed to the presentation layer after every intent
type Snapshot struct {
	TableID              string     `json:"table_id,omitempty"`
	Version              int        `json:"version"`
	Screen               ScreenView `json:"screen"`
	Players              []Player   `json:"players"`
	Cards                []CardFace `json:"cards"`
	Category             *Category  `json:"category,omitempty"`
	HideImposterIdentity bool       `json:"hide_imposter_identity"`
	RestartPending       bool       `json:"restart_pending"`
	DiscussionOrder      []int      `json:"discussion_order,omitempty"`
}
