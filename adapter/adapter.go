// Package adapter derives MCP tools from an existing gin route table.  Routes
// annotated with an operation ID become callable tools whose invocations are
// replayed against the engine in-process, so the HTTP handlers stay the
// single source of behavior.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"

	"github.com/gin-gonic/gin"

	"github.com/fnmcp/fnmcp/mcp"
	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/schema"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Operation annotates one route for tool derivation.
type Operation struct {
	// ID becomes the tool name, mirroring the route's operation identifier.
	ID          string
	Description string
	// Input is a sample value of the request body struct; its type supplies
	// the argument schema. Mutually exclusive with InputSchema.
	Input interface{}
	// InputSchema declares the argument schema directly. The adapter
	// round-trips it through a generated Go type so that the properties are
	// preserved exactly as a sample struct would yield them.
	InputSchema *mcpschema.ToolInputSchema
}

// Adapter accumulates route annotations and converts them into registered
// tools.
type Adapter struct {
	engine     *gin.Engine
	operations map[string]Operation
	include    map[string]struct{}
	exclude    map[string]struct{}
}

// Option modifies an adapter before routes are applied.
type Option func(*Adapter)

// IncludeOperations restricts derivation to the listed operation IDs.
func IncludeOperations(ids ...string) Option {
	return func(a *Adapter) {
		a.include = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			a.include[id] = struct{}{}
		}
	}
}

// ExcludeOperations skips the listed operation IDs during derivation.
func ExcludeOperations(ids ...string) Option {
	return func(a *Adapter) {
		a.exclude = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			a.exclude[id] = struct{}{}
		}
	}
}

// New creates an adapter over an existing engine. Routes must already be
// registered on the engine before Apply is called.
func New(engine *gin.Engine, options ...Option) *Adapter {
	adapter := &Adapter{
		engine:     engine,
		operations: make(map[string]Operation),
	}
	for _, option := range options {
		option(adapter)
	}
	return adapter
}

// Operation annotates the route identified by method and path. Routes
// without an annotation are ignored by Apply.
func (a *Adapter) Operation(method, path string, operation Operation) *Adapter {
	a.operations[routeKey(method, path)] = operation
	return a
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Apply walks the engine's route table and registers one tool per annotated,
// included route. Registration faults (duplicate IDs, bad schemas) are
// returned so that they surface before the host starts serving.
func (a *Adapter) Apply(svc *mcp.Service) error {
	for _, route := range a.engine.Routes() {
		operation, annotated := a.operations[routeKey(route.Method, route.Path)]
		if !annotated {
			continue
		}
		if operation.ID == "" {
			return fmt.Errorf("route %s %s: operation requires an ID", route.Method, route.Path)
		}
		if !a.selected(operation.ID) {
			continue
		}
		inputSchema, err := a.inputSchema(operation)
		if err != nil {
			return fmt.Errorf("operation %s: %w", operation.ID, err)
		}
		descriptor := &registry.ToolDescriptor{
			Name:        operation.ID,
			Description: operation.Description,
			InputSchema: inputSchema,
			Handler:     a.routeHandler(route.Method, route.Path),
		}
		if err := svc.RegisterToolDescriptor(descriptor); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) selected(id string) bool {
	if len(a.include) > 0 {
		if _, ok := a.include[id]; !ok {
			return false
		}
	}
	_, excluded := a.exclude[id]
	return !excluded
}

// inputSchema resolves the operation's argument schema. A declared schema is
// converted to a Go type and re-introspected so that schema-first and
// sample-first annotations yield identical registrations.
func (a *Adapter) inputSchema(operation Operation) (mcpschema.ToolInputSchema, error) {
	if operation.Input != nil && operation.InputSchema != nil {
		return mcpschema.ToolInputSchema{}, fmt.Errorf("Input and InputSchema are mutually exclusive")
	}
	if operation.InputSchema != nil {
		generated, err := schema.TypeFromInputSchema(*operation.InputSchema)
		if err != nil {
			return mcpschema.ToolInputSchema{}, err
		}
		return schema.BuildInputSchema(generated)
	}
	if operation.Input != nil {
		return schema.BuildInputSchema(reflect.TypeOf(operation.Input))
	}
	return mcpschema.ToolInputSchema{Type: "object", Properties: map[string]map[string]interface{}{}}, nil
}

// routeHandler replays a validated argument mapping as a JSON request
// against the engine and decodes the JSON response into the tool payload.
func (a *Adapter) routeHandler(method, path string) registry.Handler {
	return func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		body, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		request := httptest.NewRequest(method, path, bytes.NewReader(body)).WithContext(ctx)
		request.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		a.engine.ServeHTTP(recorder, request)

		if recorder.Code < http.StatusOK || recorder.Code >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("%s %s returned status %d: %s", method, path, recorder.Code, recorder.Body.String())
		}
		var payload interface{}
		if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
			// Non-JSON responses degrade to their raw text.
			return recorder.Body.String(), nil
		}
		return payload, nil
	}
}
