package models

// Player represents a seat at the table
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IsEliminated bool   `json:"is_eliminated"`
}
