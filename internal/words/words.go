// Package words supplies the secret word for a category.
package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/aaronzipp/imposter/internal/models"
	"golang.org/x/text/cases"
)

//go:embed data/categories.json
var defaultData []byte

// Entry is one category in the word file
type Entry struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Words []string `json:"words"`
}

// Pool maps categories to word lists. Safe for concurrent use; every table
// shares one pool.
type Pool struct {
	entries []Entry
	index   map[string]int // folded name -> entries index

	mu  sync.Mutex
	rng game.Rand
}

// Default parses the embedded word file
func Default(rng game.Rand) (*Pool, error) {
	return Parse(defaultData, rng)
}

// Load reads a word file from disk
func Load(path string, rng game.Rand) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	p, err := Parse(data, rng)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// Parse builds a pool from JSON
func Parse(data []byte, rng game.Rand) (*Pool, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	p := &Pool{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		rng:     rng,
	}
	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if len(e.Words) == 0 {
			return nil, fmt.Errorf("category %q has no words", e.Name)
		}
		key := fold(e.Name)
		if _, dup := p.index[key]; dup {
			return nil, fmt.Errorf("duplicate category %q", e.Name)
		}
		p.index[key] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// Word picks a word from the category. Category names match case-insensitively.
func (p *Pool) Word(category string) (string, error) {
	i, ok := p.index[fold(category)]
	if !ok {
		return "", fmt.Errorf("%q: %w", category, game.ErrUnknownCategory)
	}
	words := p.entries[i].Words

	p.mu.Lock()
	defer p.mu.Unlock()
	return words[p.rng.IntN(len(words))], nil
}

// Categories lists name and icon for the selection screen, in file order
func (p *Pool) Categories() []models.Category {
	out := make([]models.Category, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, models.Category{Name: e.Name, Icon: e.Icon})
	}
	return out
}

// fold builds a fresh Caser per call; Casers keep state and must not be shared
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
