package router

import (
	"fmt"
	"strings"
)

// segment is one path element of a parsed template: either a literal or a
// single {name} placeholder.
type segment struct {
	literal string
	param   string
}

func (s segment) placeholder() bool { return s.param != "" }

// template is the parsed form of a URI template such as
// "resource://users/{user_id}/profile".
type template struct {
	raw          string
	scheme       string
	segments     []segment
	placeholders int
}

func parseTemplate(raw string) (*template, error) {
	scheme, path, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		return nil, fmt.Errorf("template %q: missing scheme", raw)
	}
	if path == "" {
		return nil, fmt.Errorf("template %q: empty path", raw)
	}
	tpl := &template{raw: raw, scheme: scheme}
	seen := map[string]struct{}{}
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			return nil, fmt.Errorf("template %q: empty path segment", raw)
		}
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("template %q: unnamed placeholder", raw)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("template %q: placeholder %q used twice", raw, name)
			}
			seen[name] = struct{}{}
			tpl.segments = append(tpl.segments, segment{param: name})
			tpl.placeholders++
			continue
		}
		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("template %q: placeholder must span a whole segment", raw)
		}
		tpl.segments = append(tpl.segments, segment{literal: part})
	}
	return tpl, nil
}

// sameShape reports structural equality: identical scheme, segment count,
// literals and placeholder positions. Placeholder names do not matter, so
// "resource://x/{a}" and "resource://x/{b}" share one shape.
func (t *template) sameShape(other *template) bool {
	if t.scheme != other.scheme || len(t.segments) != len(other.segments) {
		return false
	}
	for i, seg := range t.segments {
		o := other.segments[i]
		if seg.placeholder() != o.placeholder() {
			return false
		}
		if !seg.placeholder() && seg.literal != o.literal {
			return false
		}
	}
	return true
}

// overlaps reports whether some concrete URI could match both templates:
// same scheme and length, and every position compatible (equal literals, or
// a placeholder on at least one side).
func (t *template) overlaps(other *template) bool {
	if t.scheme != other.scheme || len(t.segments) != len(other.segments) {
		return false
	}
	for i, seg := range t.segments {
		o := other.segments[i]
		if seg.placeholder() || o.placeholder() {
			continue
		}
		if seg.literal != o.literal {
			return false
		}
	}
	return true
}

// match binds a parsed URI path against the template, returning the
// placeholder values when every literal segment agrees.
func (t *template) match(scheme string, parts []string) (map[string]string, bool) {
	if scheme != t.scheme || len(parts) != len(t.segments) {
		return nil, false
	}
	params := make(map[string]string, t.placeholders)
	for i, seg := range t.segments {
		if seg.placeholder() {
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	return params, true
}
