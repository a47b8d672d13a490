package table

import (
	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
)

// Submit: one intent from the presentation layer
type Submit struct {
	Intent game.Intent
	Reply  chan<- Result
}

type Result struct {
	Snapshot models.Snapshot
	Err      error
}

// Query: read the current snapshot without changing anything
type Query struct {
	Reply chan<- models.Snapshot
}
