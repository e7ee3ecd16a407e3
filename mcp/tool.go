package mcp

import (
	"context"
	"encoding/json"

	"github.com/fnmcp/fnmcp/internal/conv"
	"github.com/fnmcp/fnmcp/mcp/dispatcher"
	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns MCP tool entries for every registered descriptor.
func (s *Service) Tools() serverproto.Tools {
	descriptors := s.registry.Descriptors()
	result := make(serverproto.Tools, 0, len(descriptors))
	for _, descriptor := range descriptors {
		result = append(result, s.toolEntry(descriptor))
	}
	return result
}

// MatchTools returns the tool entries whose name satisfies pattern using the
// same semantics as builtin selection ("*", prefix or exact).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result serverproto.Tools
	for _, descriptor := range s.registry.Descriptors() {
		if matchPattern(pattern, descriptor.Name) {
			result = append(result, s.toolEntry(descriptor))
		}
	}
	return result
}

// LookupTool returns the MCP tool entry registered under name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	descriptor, err := s.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.toolEntry(descriptor), nil
}

// toolEntry adapts one registry descriptor to the MCP protocol surface. The
// handler dispatches the bound descriptor directly, so an entry stays valid
// even when its descriptor lives outside the registry (the resource bridge)
// and a request can never execute a tool other than the one it was routed to.
func (s *Service) toolEntry(descriptor *registry.ToolDescriptor) *serverproto.ToolEntry {
	entry := &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:         descriptor.Name,
			Description:  conv.Pointer(descriptor.Description),
			InputSchema:  descriptor.InputSchema,
			OutputSchema: descriptor.OutputSchema,
		},
	}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		result := s.dispatcher.CallTool(ctx, descriptor, request.Params.Arguments)
		return callToolResult(result), nil
	}
	return entry
}

// callToolResult converts an invocation envelope into the MCP call result
// shape: success payloads become JSON text content, faults become IsError
// results carrying the fault message.
func callToolResult(result dispatcher.Result) *mcpschema.CallToolResult {
	res := &mcpschema.CallToolResult{}
	if result.Fault != nil {
		res.IsError = conv.Pointer(true)
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: result.Fault.Error(),
		})
		return res
	}
	var data []byte
	switch actual := result.Payload.(type) {
	case string:
		data = []byte(actual)
	case []byte:
		data = actual
	default:
		data, _ = json.Marshal(result.Payload)
	}
	res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
		Type: "text",
		Text: string(data),
	})
	return res
}
