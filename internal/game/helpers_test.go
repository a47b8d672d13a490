package game_test

import (
	"github.com/aaronzipp/imposter/internal/game"
)

// fixedRand always returns the same index, clamped to n
type fixedRand struct {
	index int
}

func (f fixedRand) IntN(n int) int {
	if f.index >= n {
		return n - 1
	}
	return f.index
}

type fakeWords map[string]string

func (f fakeWords) Word(category string) (string, error) {
	w, ok := f[category]
	if !ok {
		return "", game.ErrUnknownCategory
	}
	return w, nil
}

func testWords() fakeWords {
	return fakeWords{"Animals": "giraffe", "Food": "pizza"}
}

func newTestRoster(names ...string) game.Roster {
	if len(names) == 0 {
		names = []string{"A", "B", "C", "D"}
	}
	return game.NewRoster(names)
}
