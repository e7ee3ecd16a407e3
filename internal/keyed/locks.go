package keyed

import "sync"

// Locks hands out one mutex per key so that writers targeting the same key
// are serialized while writers on distinct keys proceed independently.
// Mutexes are created lazily and kept for the lifetime of the set.
type Locks struct {
	mux   sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocks creates an empty lock set.
func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its release function.
func (l *Locks) Lock(key string) func() {
	l.mux.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mux.Unlock()
	m.Lock()
	return m.Unlock
}
