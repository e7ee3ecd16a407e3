// Package router maps URI templates with {name} placeholders to resource
// handlers and resolves concrete request URIs back to a handler plus bound
// path parameters.  Structural template collisions and resolution ties are
// rejected when a template is registered so that ambiguity never surfaces
// during a live request.
package router
