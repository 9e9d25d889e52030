package command

import (
	"sync"

	"github.com/sandevgo/reachout/internal/core"
)

// ManualStore keeps content typed in with /manual until the next /generate of
// the same session.
type ManualStore struct {
	mu    sync.Mutex
	items map[string]*core.ResultSet
}

func NewManualStore() *ManualStore {
	return &ManualStore{items: make(map[string]*core.ResultSet)}
}

func (s *ManualStore) Set(sessionID string, rs *core.ResultSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sessionID] = rs
}

// Take returns and forgets the content of sessionID.
func (s *ManualStore) Take(sessionID string) *core.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.items[sessionID]
	delete(s.items, sessionID)
	return rs
}

func (s *ManualStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*core.ResultSet)
}
