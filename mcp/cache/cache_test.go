package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestPutGet(t *testing.T) {
	c := New()
	if err := c.Put("greeting", "hello"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	value, ok := c.Get("greeting")
	if !ok || value != "hello" {
		t.Fatalf("expected hello, got %v (%v)", value, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("missing key must report absence")
	}
}

func TestPutOverwrite(t *testing.T) {
	c := New()
	_ = c.Put("k", 1)
	_ = c.Put("k", 2)
	value, _ := c.Get("k")
	if value != 2 {
		t.Fatalf("expected last write to win, got %v", value)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestConcurrentWritesSameKey(t *testing.T) {
	c := New()
	type pair struct {
		first  string
		second string
	}
	candidates := map[interface{}]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		value := pair{first: fmt.Sprintf("f%d", i), second: fmt.Sprintf("s%d", i)}
		candidates[value] = true
		wg.Add(1)
		go func(v pair) {
			defer wg.Done()
			if err := c.Put("contended", v); err != nil {
				t.Errorf("put failed: %v", err)
			}
		}(value)
	}
	wg.Wait()
	// The winner is unspecified but must be one of the written values,
	// never a torn mix of two.
	value, ok := c.Get("contended")
	if !ok {
		t.Fatalf("expected a value under contended key")
	}
	if !candidates[value] {
		t.Fatalf("observed value %v was never written", value)
	}
}

func TestKeysSorted(t *testing.T) {
	c := New()
	for _, key := range []string{"zeta", "alpha", "mid"} {
		_ = c.Put(key, key)
	}
	keys := c.Keys()
	expected := []string{"alpha", "mid", "zeta"}
	for i, key := range expected {
		if keys[i] != key {
			t.Fatalf("expected sorted keys %v, got %v", expected, keys)
		}
	}
}

func TestClose(t *testing.T) {
	c := New()
	_ = c.Put("k", "v")
	if err := c.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := c.Put("k", "other"); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("close must release entries, got %d", c.Len())
	}
	// Idempotent.
	if err := c.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
