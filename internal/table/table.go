package table

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
	"github.com/aaronzipp/imposter/internal/sse"
)

var ErrTableClosed = errors.New("table closed")

// Table is one pass-and-play game. Run owns the machine; everything else
// talks to it through Inbox, so intents apply one at a time in arrival order.
type Table struct {
	ID    string
	Inbox chan any

	machine *game.Machine
	hub     *sse.Hub
	quit    chan struct{}
	done    chan struct{}
}

func New(id string, roster game.Roster, env game.Env) *Table {
	return &Table{
		ID:      id,
		Inbox:   make(chan any, game.InboxSize),
		machine: game.NewMachine(roster, env),
		hub:     sse.NewHub(),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Hub is where snapshot subscribers register
func (t *Table) Hub() *sse.Hub {
	return t.hub
}

// Stop ends Run. Safe to call once.
func (t *Table) Stop() {
	close(t.quit)
	<-t.done
}

func (t *Table) Run() {
	defer close(t.done)
	for {
		select {
		case <-t.quit:
			t.hub.Broadcast(sse.EventTableClosed, `{"table_id":"`+t.ID+`"}`)
			return
		case cmd := <-t.Inbox:
			t.handleCommand(cmd)
		}
	}
}

func (t *Table) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Submit:
		if err := t.machine.Apply(c.Intent); err != nil {
			log.Printf("table %s: rejected %s: %v", t.ID, c.Intent.Kind(), err)
			c.Reply <- Result{Snapshot: t.snapshot(), Err: err}
			return
		}
		snap := t.snapshot()
		c.Reply <- Result{Snapshot: snap}
		t.broadcast(snap)
	case Query:
		c.Reply <- t.snapshot()
	}
}

func (t *Table) snapshot() models.Snapshot {
	snap := t.machine.Snapshot()
	snap.TableID = t.ID
	return snap
}

func (t *Table) broadcast(snap models.Snapshot) {
	b, err := json.Marshal(snap)
	if err != nil {
		log.Printf("table %s: marshal snapshot: %v", t.ID, err)
		return
	}
	t.hub.Broadcast(sse.EventState, string(b))
}

// Apply submits an intent and waits for it to be applied or rejected
func (t *Table) Apply(ctx context.Context, in game.Intent) (models.Snapshot, error) {
	reply := make(chan Result, 1)
	select {
	case t.Inbox <- Submit{Intent: in, Reply: reply}:
	case <-t.quit:
		return models.Snapshot{}, ErrTableClosed
	case <-ctx.Done():
		return models.Snapshot{}, ctx.Err()
	}
	// once queued the intent runs to completion; ctx only stops the wait
	select {
	case res := <-reply:
		return res.Snapshot, res.Err
	case <-t.done:
		return models.Snapshot{}, ErrTableClosed
	case <-ctx.Done():
		return models.Snapshot{}, ctx.Err()
	}
}

// Snapshot returns the current state
func (t *Table) Snapshot(ctx context.Context) (models.Snapshot, error) {
	reply := make(chan models.Snapshot, 1)
	select {
	case t.Inbox <- Query{Reply: reply}:
	case <-t.quit:
		return models.Snapshot{}, ErrTableClosed
	case <-ctx.Done():
		return models.Snapshot{}, ctx.Err()
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-t.done:
		return models.Snapshot{}, ErrTableClosed
	case <-ctx.Done():
		return models.Snapshot{}, ctx.Err()
	}
}
