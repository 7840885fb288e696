package notebook

import "sync"

// cellStore is a keyed in-memory record set. Lookups never fail with
// transport errors, so the API stays (value, ok) shaped; ordering concerns
// live with the Notebook, which tracks registration order separately.
type cellStore[K comparable, T any] struct {
	mu      sync.RWMutex
	records map[K]*T
	keyOf   func(*T) K
}

func newCellStore[K comparable, T any](keyOf func(*T) K) *cellStore[K, T] {
	return &cellStore[K, T]{
		records: make(map[K]*T),
		keyOf:   keyOf,
	}
}

func (s *cellStore[K, T]) put(v *T) {
	if v == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[s.keyOf(v)] = v
}

func (s *cellStore[K, T]) get(key K) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	return v, ok
}

func (s *cellStore[K, T]) remove(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
}

func (s *cellStore[K, T]) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
