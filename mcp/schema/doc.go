// Package schema derives JSON-Schema style parameter descriptions from Go
// struct types and converts schemas back into dynamically generated Go types.
// Derivation happens once at registration time so that unsupported parameter
// types surface during startup validation rather than during a live call.
package schema
