package registry

import (
	"context"
	"fmt"
	"sync"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Handler executes one tool call with already validated arguments.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// ToolDescriptor holds the registered metadata backing one tool. Descriptors
// are immutable after registration; the handler is referenced, never copied.
type ToolDescriptor struct {
	Name         string
	Description  string
	InputSchema  mcpschema.ToolInputSchema
	OutputSchema *mcpschema.ToolOutputSchema
	Handler      Handler
}

// DuplicateNameError reports a tool name collision at registration time.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate tool name %q", e.Name)
}

// NotFoundError reports a lookup for an unknown tool.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown tool: %v", e.Name)
}

// Registry maps unique tool names to descriptors.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolDescriptor
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tools: make(map[string]*ToolDescriptor)}
}

// Register adds a descriptor. A name collision fails with DuplicateNameError
// and leaves the registry untouched.
func (r *Registry) Register(descriptor *ToolDescriptor) error {
	if descriptor == nil || descriptor.Name == "" {
		return fmt.Errorf("tool descriptor requires a name")
	}
	if descriptor.Handler == nil {
		return fmt.Errorf("tool %q requires a handler", descriptor.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.tools[descriptor.Name]; dup {
		return &DuplicateNameError{Name: descriptor.Name}
	}
	r.tools[descriptor.Name] = descriptor
	r.order = append(r.order, descriptor.Name)
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*ToolDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.tools[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return descriptor, nil
}

// Descriptors returns all descriptors in registration order. The slice is a
// copy and therefore safe for callers to modify.
func (r *Registry) Descriptors() []*ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
