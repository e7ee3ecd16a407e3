// Package greeter exposes greeting demonstration tools.
package greeter

import (
	"context"
	"fmt"

	"github.com/fnmcp/fnmcp/mcp/registry"
)

// Input is the argument schema shared by the greeting tools.
type Input struct {
	Name string `json:"name" description:"Name to address"`
}

// Output carries the rendered message.
type Output struct {
	Message string `json:"message"`
}

// Greet returns a greeting message.
func Greet(_ context.Context, in Input) (Output, error) {
	return Output{Message: fmt.Sprintf("Hello, %s!", in.Name)}, nil
}

// Goodbye returns a farewell message.
func Goodbye(_ context.Context, in Input) (Output, error) {
	return Output{Message: fmt.Sprintf("Goodbye, %s!", in.Name)}, nil
}

// Tools returns the descriptors this package contributes.
func Tools() ([]*registry.ToolDescriptor, error) {
	greet, err := registry.Typed("greet_user", "Return a greeting message", Greet)
	if err != nil {
		return nil, err
	}
	goodbye, err := registry.Typed("goodbye_user", "Return a farewell message", Goodbye)
	if err != nil {
		return nil, err
	}
	return []*registry.ToolDescriptor{greet, goodbye}, nil
}
