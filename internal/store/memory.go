package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aaronzipp/imposter/internal/table"
)

var ErrDuplicateTable = errors.New("duplicate table id")

// TableStore indexes running tables by ID. Starting and stopping a table is
// up to the caller.
type TableStore struct {
	mu   sync.RWMutex
	byID map[string]*table.Table
}

func NewTableStore() *TableStore {
	return &TableStore{byID: make(map[string]*table.Table)}
}

// Add registers t under t.ID
func (s *TableStore) Add(t *table.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byID[t.ID]; taken {
		return fmt.Errorf("add table %s: %w", t.ID, ErrDuplicateTable)
	}
	s.byID[t.ID] = t
	return nil
}

func (s *TableStore) Get(id string) (*table.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	return t, ok
}

// Delete unregisters a table and hands it back so the caller can stop it
func (s *TableStore) Delete(id string) (*table.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if ok {
		delete(s.byID, id)
	}
	return t, ok
}
