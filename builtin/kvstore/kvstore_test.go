package kvstore

import (
	"context"
	"testing"

	"github.com/fnmcp/fnmcp/mcp/cache"
)

func TestTools(t *testing.T) {
	c := cache.New()
	defer c.Close()
	tools, err := Tools(c)
	if err != nil {
		t.Fatalf("Tools failed: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(tools))
	}
	byName := map[string]func(context.Context, map[string]interface{}) (interface{}, error){}
	for _, tool := range tools {
		byName[tool.Name] = tool.Handler
	}

	ctx := context.Background()
	result, err := byName["cache_value"](ctx, map[string]interface{}{"key": "color", "value": "green"})
	if err != nil {
		t.Fatalf("cache_value failed: %v", err)
	}
	stored := result.(PutOutput)
	if !stored.Stored || stored.Key != "color" {
		t.Fatalf("unexpected put acknowledgment: %+v", stored)
	}

	result, err = byName["get_cached_value"](ctx, map[string]interface{}{"key": "color"})
	if err != nil {
		t.Fatalf("get_cached_value failed: %v", err)
	}
	fetched := result.(GetOutput)
	if !fetched.Found || fetched.Value != "green" {
		t.Fatalf("unexpected lookup result: %+v", fetched)
	}

	result, err = byName["get_cached_value"](ctx, map[string]interface{}{"key": "missing"})
	if err != nil {
		t.Fatalf("get_cached_value failed: %v", err)
	}
	fetched = result.(GetOutput)
	if fetched.Found {
		t.Fatalf("missing key must report found=false: %+v", fetched)
	}
}
