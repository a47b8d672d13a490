package game_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/aaronzipp/imposter/internal/game"
)

func TestNewRosterAssignsIDs(t *testing.T) {
	r := newTestRoster("A", "A", "B")
	if len(r) != 3 {
		t.Fatalf("expected 3 players, got %d", len(r))
	}
	if r[0].ID == "" || r[0].ID == r[1].ID {
		t.Fatalf("expected distinct ids for duplicate names, got %q and %q", r[0].ID, r[1].ID)
	}
	for _, p := range r {
		if p.IsEliminated {
			t.Errorf("player %s should start active", p.Name)
		}
	}
}

func TestActiveIndicesPreservesOrder(t *testing.T) {
	r := newTestRoster("A", "B", "C", "D", "E")
	r, err := r.Eliminate(1)
	if err != nil {
		t.Fatalf("eliminate: %v", err)
	}
	r, err = r.Eliminate(3)
	if err != nil {
		t.Fatalf("eliminate: %v", err)
	}
	if got := r.ActiveIndices(); !slices.Equal(got, []int{0, 2, 4}) {
		t.Fatalf("active indices = %v, want [0 2 4]", got)
	}
	if r.ActiveCount() != 3 {
		t.Fatalf("active count = %d, want 3", r.ActiveCount())
	}
}

func TestEliminateSetsOnlyTarget(t *testing.T) {
	r := newTestRoster()
	out, err := r.Eliminate(2)
	if err != nil {
		t.Fatalf("eliminate: %v", err)
	}
	for i, p := range out {
		if p.IsEliminated != (i == 2) {
			t.Errorf("player %d eliminated = %v", i, p.IsEliminated)
		}
	}
	// receiver is untouched
	for i, p := range r {
		if p.IsEliminated {
			t.Errorf("source roster player %d was mutated", i)
		}
	}
}

func TestEliminateRejectsInvalidIndex(t *testing.T) {
	r := newTestRoster()
	for _, idx := range []int{-1, 4, 99} {
		if _, err := r.Eliminate(idx); !errors.Is(err, game.ErrInvalidIndex) {
			t.Errorf("eliminate(%d) error = %v, want ErrInvalidIndex", idx, err)
		}
	}
}

func TestEliminateTwiceFails(t *testing.T) {
	r, err := newTestRoster().Eliminate(0)
	if err != nil {
		t.Fatalf("eliminate: %v", err)
	}
	if _, err := r.Eliminate(0); !errors.Is(err, game.ErrInvalidIndex) {
		t.Fatalf("second eliminate error = %v, want ErrInvalidIndex", err)
	}
}

func TestIsActive(t *testing.T) {
	r, err := newTestRoster().Eliminate(1)
	if err != nil {
		t.Fatalf("eliminate: %v", err)
	}
	for idx, want := range map[int]bool{-1: false, 0: true, 1: false, 3: true, 4: false} {
		if got := r.IsActive(idx); got != want {
			t.Errorf("IsActive(%d) = %v, want %v", idx, got, want)
		}
	}
}

func TestReviveClearsFlags(t *testing.T) {
	r, _ := newTestRoster().Eliminate(1)
	r = r.Revive()
	if r.ActiveCount() != 4 {
		t.Fatalf("active count after revive = %d, want 4", r.ActiveCount())
	}
}
