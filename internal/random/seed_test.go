package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two seeds were equal: %d", a)
	}
}

func TestFixedSourceIsReplayable(t *testing.T) {
	draw := func() []int {
		src := NewSource(42)
		var out []int
		for range 3 {
			r, err := src.Next()
			if err != nil {
				t.Fatalf("next: %v", err)
			}
			out = append(out, r.IntN(1000))
		}
		return out
	}
	first, second := draw(), draw()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("draw %d differs: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestUnseededSource(t *testing.T) {
	src := NewSource(0)
	r, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if n := r.IntN(5); n < 0 || n >= 5 {
		t.Fatalf("IntN(5) = %d", n)
	}
}
