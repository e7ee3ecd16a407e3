// Package cache provides the key-value store injected into tools that need
// shared mutable state.  It has an explicit lifecycle: created during service
// bootstrap, closed at shutdown.  Writers targeting the same key are
// serialized so concurrent updates never produce torn values.
package cache

import (
	"errors"
	"sync/atomic"

	"github.com/fnmcp/fnmcp/internal/keyed"
)

// ErrClosed is returned for writes after Close.
var ErrClosed = errors.New("cache is closed")

// Cache is a concurrency-safe key-value store with per-key write
// serialization.
type Cache struct {
	entries *keyed.Map[interface{}]
	locks   *keyed.Locks
	closed  int32
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: keyed.NewMap[interface{}](),
		locks:   keyed.NewLocks(),
	}
}

// Put stores value under key, serialized against other writers of the same
// key. Values are stored whole so readers never observe a partial update.
func (c *Cache) Put(key string, value interface{}) error {
	if atomic.LoadInt32(&c.closed) == 1 {
		return ErrClosed
	}
	unlock := c.locks.Lock(key)
	defer unlock()
	c.entries.Set(key, value)
	return nil
}

// Get returns the value stored under key.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.entries.Get(key)
}

// Keys returns all stored keys in sorted order.
func (c *Cache) Keys() []string {
	return c.entries.Keys()
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Close tears the cache down: entries are released and subsequent writes
// fail with ErrClosed. Close is idempotent.
func (c *Cache) Close() error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	c.entries.Clear()
	return nil
}
