// Package keyed offers a lightweight, generic, concurrency-safe map guarded
// by a sync.RWMutex plus a per-key mutex set used to serialize writers that
// target the same key.  It is intentionally minimal and tuned to the specific
// needs of fnmcp's cache component.
package keyed
