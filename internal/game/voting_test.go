package game_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/aaronzipp/imposter/internal/game"
)

func TestDiscussionOrderScenario(t *testing.T) {
	r := newTestRoster("A", "B", "C", "D")
	order, err := game.DiscussionOrder(r.ActiveIndices(), 2)
	if err != nil {
		t.Fatalf("discussion order: %v", err)
	}
	if !slices.Equal(order, []int{2, 3, 0, 1}) {
		t.Fatalf("order = %v, want [2 3 0 1]", order)
	}
}

func TestDiscussionOrderIsRotation(t *testing.T) {
	tests := []struct {
		active []int
		start  int
	}{
		{[]int{0, 1, 2}, 0},
		{[]int{0, 1, 2}, 5},
		{[]int{0, 2, 4, 5}, 3},
		{[]int{1, 3, 6}, 7},
		{[]int{4}, 9},
		{[]int{0, 1, 2, 3}, -1},
	}
	for _, tt := range tests {
		order, err := game.DiscussionOrder(tt.active, tt.start)
		if err != nil {
			t.Fatalf("discussion order(%v, %d): %v", tt.active, tt.start, err)
		}
		if len(order) != len(tt.active) {
			t.Fatalf("len = %d, want %d", len(order), len(tt.active))
		}
		sorted := slices.Clone(order)
		slices.Sort(sorted)
		want := slices.Clone(tt.active)
		slices.Sort(want)
		if !slices.Equal(sorted, want) {
			t.Fatalf("order %v is not a permutation of %v", order, tt.active)
		}

		n := len(tt.active)
		shift := ((tt.start % n) + n) % n
		back, err := game.DiscussionOrder(order, n-shift)
		if err != nil {
			t.Fatalf("rotate back: %v", err)
		}
		if !slices.Equal(back, tt.active) {
			t.Fatalf("rotating %v back by %d gave %v, want %v", order, shift, back, tt.active)
		}
	}
}

func TestDiscussionOrderModuloActiveCount(t *testing.T) {
	// 5 seats, 2 eliminated: start 4 wraps over the 3 active seats, not the 5 roster seats
	r := newTestRoster("A", "B", "C", "D", "E")
	r, _ = r.Eliminate(1)
	r, _ = r.Eliminate(3)
	order, err := game.DiscussionOrder(r.ActiveIndices(), 4)
	if err != nil {
		t.Fatalf("discussion order: %v", err)
	}
	if !slices.Equal(order, []int{2, 4, 0}) {
		t.Fatalf("order = %v, want [2 4 0]", order)
	}
	for _, idx := range order {
		if r[idx].IsEliminated {
			t.Fatalf("eliminated player %d in discussion order", idx)
		}
	}
}

func TestDiscussionOrderStable(t *testing.T) {
	a, _ := game.DiscussionOrder([]int{0, 2, 3}, 1)
	b, _ := game.DiscussionOrder([]int{0, 2, 3}, 1)
	if !slices.Equal(a, b) {
		t.Fatalf("same inputs gave %v and %v", a, b)
	}
}

func TestDiscussionOrderNoActivePlayers(t *testing.T) {
	if _, err := game.DiscussionOrder(nil, 3); !errors.Is(err, game.ErrNoActivePlayers) {
		t.Fatalf("error = %v, want ErrNoActivePlayers", err)
	}
}

func TestResolveEviction(t *testing.T) {
	const imposter = 2
	for p := range 5 {
		out := game.ResolveEviction(p, imposter)
		if out.EliminatedIndex != p {
			t.Errorf("eliminated index = %d, want %d", out.EliminatedIndex, p)
		}
		if out.WasImposter != (p == imposter) {
			t.Errorf("p=%d was imposter = %v", p, out.WasImposter)
		}
	}
}
