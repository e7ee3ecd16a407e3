package registry

import (
	"context"
	"fmt"
	"reflect"

	"github.com/fnmcp/fnmcp/internal/conv"
	"github.com/fnmcp/fnmcp/mcp/schema"
)

// Typed builds a descriptor from a typed Go function. Input and output
// schemas are derived from the In and Out struct types via reflection; a
// schema derivation failure (for example an opaque field type) is returned
// here so that it surfaces at registration time.
func Typed[In any, Out any](name, description string, fn func(ctx context.Context, in In) (Out, error)) (*ToolDescriptor, error) {
	inputSchema, err := schema.BuildInputSchema(reflect.TypeOf((*In)(nil)).Elem())
	if err != nil {
		return nil, fmt.Errorf("build input schema for %s: %w", name, err)
	}
	outputSchema, err := schema.BuildOutputSchema(reflect.TypeOf((*Out)(nil)).Elem())
	if err != nil {
		return nil, fmt.Errorf("build output schema for %s: %w", name, err)
	}
	handler := func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var in In
		if err := conv.Convert(args, &in); err != nil {
			return nil, fmt.Errorf("decode arguments for %s: %w", name, err)
		}
		return fn(ctx, in)
	}
	return &ToolDescriptor{
		Name:         name,
		Description:  description,
		InputSchema:  inputSchema,
		OutputSchema: outputSchema,
		Handler:      handler,
	}, nil
}
