// Package kvstore exposes tools backed by the service cache.  The cache is
// injected at registration time rather than reached through ambient state so
// its lifecycle stays owned by the service.
package kvstore

import (
	"context"
	"fmt"

	"github.com/fnmcp/fnmcp/mcp/cache"
	"github.com/fnmcp/fnmcp/mcp/registry"
)

// PutInput is the argument schema for cache_value.
type PutInput struct {
	Key   string `json:"key" description:"Cache key"`
	Value string `json:"value" description:"Value to store"`
}

// PutOutput acknowledges a stored entry.
type PutOutput struct {
	Key    string `json:"key"`
	Stored bool   `json:"stored"`
}

// GetInput is the argument schema for get_cached_value.
type GetInput struct {
	Key string `json:"key" description:"Cache key"`
}

// GetOutput carries a looked-up entry.
type GetOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// Tools returns the descriptors this package contributes, bound to c.
func Tools(c *cache.Cache) ([]*registry.ToolDescriptor, error) {
	put := func(_ context.Context, in PutInput) (PutOutput, error) {
		if err := c.Put(in.Key, in.Value); err != nil {
			return PutOutput{}, err
		}
		return PutOutput{Key: in.Key, Stored: true}, nil
	}
	get := func(_ context.Context, in GetInput) (GetOutput, error) {
		value, found := c.Get(in.Key)
		if !found {
			return GetOutput{Key: in.Key}, nil
		}
		text, ok := value.(string)
		if !ok {
			return GetOutput{}, fmt.Errorf("cached value for %q is not a string", in.Key)
		}
		return GetOutput{Key: in.Key, Value: text, Found: true}, nil
	}

	cacheValue, err := registry.Typed("cache_value", "Store a value in the shared cache", put)
	if err != nil {
		return nil, err
	}
	getCached, err := registry.Typed("get_cached_value", "Fetch a value from the shared cache", get)
	if err != nil {
		return nil, err
	}
	return []*registry.ToolDescriptor{cacheValue, getCached}, nil
}
