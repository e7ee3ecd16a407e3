// Package mathops exposes arithmetic demonstration tools.
package mathops

import (
	"context"

	"github.com/fnmcp/fnmcp/mcp/registry"
)

// SumInput is the argument schema for sum_numbers.
type SumInput struct {
	A int `json:"a" description:"First addend"`
	B int `json:"b" description:"Second addend"`
}

// SumOutput carries the sum of the two addends.
type SumOutput struct {
	Sum int `json:"sum"`
}

// Sum returns the sum of two numbers.
func Sum(_ context.Context, in SumInput) (SumOutput, error) {
	return SumOutput{Sum: in.A + in.B}, nil
}

// Tools returns the descriptors this package contributes.
func Tools() ([]*registry.ToolDescriptor, error) {
	sum, err := registry.Typed("sum_numbers", "Return the sum of two numbers", Sum)
	if err != nil {
		return nil, err
	}
	return []*registry.ToolDescriptor{sum}, nil
}
