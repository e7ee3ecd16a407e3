// Package registry maintains the tool descriptors exposed by a fnmcp
// service.  Registration is append-only for the process lifetime: tools are
// declared during a startup phase and the registry is effectively read-only
// once serving begins.
package registry
