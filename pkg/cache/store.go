package cache

import "sync"

// Store is a thread-safe keyed store. Entries have no size or time bound;
// they leave only through RemoveFunc.
type Store[K comparable, V any] struct {
	mu      sync.Mutex
	items   map[K]V
	onEvict func(key K, value V)
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{items: make(map[K]V)}
}

// SetEvictCallback sets a function called for every entry RemoveFunc drops.
func (s *Store[K, V]) SetEvictCallback(fn func(key K, value V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// GetOrPut returns the value stored under key. If there is none, it stores
// the value returned by create and reports false. create runs under the store
// lock, so concurrent callers for one key share a single value.
func (s *Store[K, V]) GetOrPut(key K, create func() V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.items[key]; ok {
		return v, true
	}

	v := create()
	s.items[key] = v
	return v, false
}

// RemoveFunc removes every entry for which fn returns true and returns the
// number of removed entries.
func (s *Store[K, V]) RemoveFunc(fn func(key K, value V) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, v := range s.items {
		if !fn(k, v) {
			continue
		}
		delete(s.items, k)
		removed++
		if s.onEvict != nil {
			s.onEvict(k, v)
		}
	}
	return removed
}

func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
