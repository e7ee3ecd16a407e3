package keyed

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map structure
type Map[V any] struct {
	mux sync.RWMutex
	m   map[string]V
}

// NewMap creates a new instance of Map
func NewMap[V any]() *Map[V] {
	return &Map[V]{
		m: make(map[string]V),
	}
}

// Get retrieves an item by key
func (r *Map[V]) Get(key string) (V, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Set adds or updates an item by key
func (r *Map[V]) Set(key string, value V) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Delete removes an item by key
func (r *Map[V]) Delete(key string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Keys returns a sorted slice of all keys
func (r *Map[V]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	keys := make([]string, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored items
func (r *Map[V]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Clear removes all items
func (r *Map[V]) Clear() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m = make(map[string]V)
}
