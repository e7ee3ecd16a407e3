// Package dispatcher validates incoming call arguments against a tool's
// schema, runs the bound handler on a bounded worker pool and normalizes the
// outcome into a uniform success/error envelope.  A handler fault never
// escapes the dispatcher: panics, errors, timeouts and non-serializable
// results are all re-expressed as error envelopes.
package dispatcher
