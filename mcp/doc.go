// Package mcp wires together the fnmcp tool registry, resource router,
// invocation dispatcher and cache.  Its central Service type loads
// configuration, registers built-in as well as caller-supplied tools and
// resources during an explicit startup phase, serves invocations in library
// mode and can expose them over an MCP server.
package mcp
