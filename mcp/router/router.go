package router

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Handler produces a resource payload for the bound path parameters.
type Handler func(ctx context.Context, params map[string]string) (interface{}, error)

// ResourceDescriptor holds the registered metadata backing one resource.
type ResourceDescriptor struct {
	Template    string
	Description string
	Handler     Handler
}

// DuplicateTemplateError reports a structural template collision at
// registration time. Two templates collide when they are equal after
// placeholder-name normalization.
type DuplicateTemplateError struct {
	Template string
	Existing string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("duplicate resource template %q (conflicts with %q)", e.Template, e.Existing)
}

// AmbiguousTemplateError reports two templates that would tie during
// resolution: some URI matches both and neither is more specific.
type AmbiguousTemplateError struct {
	Template string
	Existing string
}

func (e *AmbiguousTemplateError) Error() string {
	return fmt.Sprintf("ambiguous resource template %q (ties with %q)", e.Template, e.Existing)
}

// NotFoundError reports a URI that matches no registered template.
type NotFoundError struct {
	URI string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown resource: %v", e.URI)
}

type entry struct {
	tpl        *template
	descriptor *ResourceDescriptor
}

// Router resolves concrete URIs against registered URI templates.
type Router struct {
	mu      sync.RWMutex
	entries []*entry
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Register adds a resource descriptor. Malformed templates, structural
// duplicates and tie-prone overlaps fail here, before the process starts
// accepting reads.
func (r *Router) Register(descriptor *ResourceDescriptor) error {
	if descriptor == nil || descriptor.Template == "" {
		return fmt.Errorf("resource descriptor requires a template")
	}
	if descriptor.Handler == nil {
		return fmt.Errorf("resource %q requires a handler", descriptor.Template)
	}
	tpl, err := parseTemplate(descriptor.Template)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if tpl.sameShape(existing.tpl) {
			return &DuplicateTemplateError{Template: descriptor.Template, Existing: existing.tpl.raw}
		}
		if tpl.overlaps(existing.tpl) && tpl.placeholders == existing.tpl.placeholders {
			return &AmbiguousTemplateError{Template: descriptor.Template, Existing: existing.tpl.raw}
		}
	}
	r.entries = append(r.entries, &entry{tpl: tpl, descriptor: descriptor})
	return nil
}

// Resolve matches uri against the registered templates. When several
// templates match, the one with the fewest placeholders wins; ties cannot
// occur because they are rejected at registration.
func (r *Router) Resolve(uri string) (*ResourceDescriptor, map[string]string, error) {
	scheme, path, ok := strings.Cut(uri, "://")
	if !ok || path == "" {
		return nil, nil, &NotFoundError{URI: uri}
	}
	parts := strings.Split(path, "/")

	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *entry
	var bestParams map[string]string
	for _, candidate := range r.entries {
		params, matched := candidate.tpl.match(scheme, parts)
		if !matched {
			continue
		}
		if best == nil || candidate.tpl.placeholders < best.tpl.placeholders {
			best = candidate
			bestParams = params
		}
	}
	if best == nil {
		return nil, nil, &NotFoundError{URI: uri}
	}
	return best.descriptor, bestParams, nil
}

// Descriptors returns all registered descriptors in registration order. The
// slice is a copy and therefore safe for callers to modify.
func (r *Router) Descriptors() []*ResourceDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ResourceDescriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.descriptor)
	}
	return out
}

// Len returns the number of registered resources.
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
