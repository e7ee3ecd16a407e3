package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns an MCP implementer that exposes the already-built tool
// registry. Every incoming connection reuses the same descriptors – tools are
// registered once during Service bootstrap rather than on each connection.
// Resources are reachable through the read_resource bridge tool.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, tool := range s.Tools() {
		impl.Registry.ToolRegistry.Put(tool.Metadata.Name, tool)
	}
	bridge := s.resourceBridgeEntry()
	impl.Registry.ToolRegistry.Put(bridge.Metadata.Name, bridge)
	return impl, nil
}
