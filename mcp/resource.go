package mcp

import (
	"context"
	"fmt"

	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Resources returns the registered resource descriptors in registration
// order. The slice is a copy and therefore safe for callers to modify.
func (s *Service) Resources() []*router.ResourceDescriptor {
	return s.router.Descriptors()
}

// resourceBridgeEntry builds the read_resource tool entry registered with
// every MCP connection so that URI-addressed resources stay reachable over
// the tool surface. The input schema is declared explicitly because the
// payload shape varies per resource.
func (s *Service) resourceBridgeEntry() *serverproto.ToolEntry {
	descriptor := &registry.ToolDescriptor{
		Name:        "read_resource",
		Description: "Read a registered resource by URI",
		InputSchema: mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"uri": {"type": "string", "description": "Resource URI, e.g. resource://weather/CA/alerts"},
			},
			Required: []string{"uri"},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			uri, _ := args["uri"].(string)
			result := s.ReadResource(ctx, uri)
			if err := result.Err(); err != nil {
				return nil, fmt.Errorf("read %s: %w", uri, err)
			}
			return result.Payload, nil
		},
	}
	return s.toolEntry(descriptor)
}
