package game_test

import (
	"testing"

	"github.com/aaronzipp/imposter/internal/game"
)

func TestParseRotationPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    game.RotationPolicy
		wantErr bool
	}{
		{"", game.RotationFixed, false},
		{"fixed", game.RotationFixed, false},
		{" Advance ", game.RotationAdvance, false},
		{"RANDOM", game.RotationRandom, false},
		{"clockwise", "", true},
	}
	for _, tt := range tests {
		got, err := game.ParseRotationPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parse %q: err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("parse %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRotationNext(t *testing.T) {
	if got := game.RotationFixed.Next(2, 4, fixedRand{}); got != 2 {
		t.Errorf("fixed: got %d, want 2", got)
	}
	if got := game.RotationAdvance.Next(3, 4, fixedRand{}); got != 0 {
		t.Errorf("advance wraps: got %d, want 0", got)
	}
	if got := game.RotationRandom.Next(0, 4, fixedRand{index: 3}); got != 3 {
		t.Errorf("random: got %d, want 3", got)
	}
	if got := game.RotationAdvance.Next(5, 0, fixedRand{}); got != 0 {
		t.Errorf("empty table: got %d, want 0", got)
	}
}
