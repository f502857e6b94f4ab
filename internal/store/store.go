package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"season-sim/internal/season"
)

type entry struct {
	result    *season.Result
	expiresAt time.Time
}

// ResultStore keeps completed season results in memory for a limited time so
// clients can fetch weekly details after a run. Nothing is persisted.
type ResultStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entry
	ttl   time.Duration
	now   func() time.Time
}

func New(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultStore{
		items: make(map[uuid.UUID]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *ResultStore) Put(res *season.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[res.RunID] = &entry{result: res, expiresAt: s.now().Add(s.ttl)}
}

// Get returns the result if present and not expired.
func (s *ResultStore) Get(id uuid.UUID) (*season.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[id]
	if !ok || s.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Prune drops expired entries and reports how many were removed.
func (s *ResultStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for id, e := range s.items {
		if now.After(e.expiresAt) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

// RunJanitor prunes on every tick until stop is closed.
func (s *ResultStore) RunJanitor(every time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Prune()
		case <-stop:
			return
		}
	}
}
