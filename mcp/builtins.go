package mcp

import (
	"context"
	"sort"
	"strings"

	"github.com/fnmcp/fnmcp/builtin/greeter"
	"github.com/fnmcp/fnmcp/builtin/kvstore"
	"github.com/fnmcp/fnmcp/builtin/mathops"
	"github.com/fnmcp/fnmcp/builtin/translator"
	"github.com/fnmcp/fnmcp/builtin/weather"
	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
)

// builtinDeps carries the service-owned collaborators a builtin may need.
type builtinDeps struct {
	service *Service
}

// builtinFactory yields the tool and resource descriptors of one builtin
// group.
type builtinFactory func(deps builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error)

// builtinFactories lists all builtin groups. The key must match the group
// name used in configuration patterns so that selection stays intuitive.
var builtinFactories = map[string]builtinFactory{
	"mathops": func(builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		tools, err := mathops.Tools()
		return tools, nil, err
	},
	"greeter": func(builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		tools, err := greeter.Tools()
		return tools, nil, err
	},
	"kvstore": func(deps builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		tools, err := kvstore.Tools(deps.service.cache)
		return tools, nil, err
	},
	"translator": func(deps builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		tools, err := translator.Tools(deps.service.translatorClient())
		return tools, nil, err
	},
	"weather": func(deps builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		client := deps.service.weatherClient()
		tools, err := weather.Tools(client)
		if err != nil {
			return nil, nil, err
		}
		return tools, weather.Resources(client), nil
	},
	"ali_age": func(builtinDeps) ([]*registry.ToolDescriptor, []*router.ResourceDescriptor, error) {
		resource := &router.ResourceDescriptor{
			Template:    "resource://ali_age",
			Description: "Provides Ali's age as a static resource",
			Handler: func(context.Context, map[string]string) (interface{}, error) {
				return map[string]interface{}{"age": 15}, nil
			},
		}
		return nil, []*router.ResourceDescriptor{resource}, nil
	},
}

// registerBuiltins resolves the configured patterns and registers every
// selected builtin group. Names are processed in sorted order so that
// registration faults are deterministic.
func (s *Service) registerBuiltins() error {
	deps := builtinDeps{service: s}
	for _, name := range resolveBuiltins(s.config.Builtins) {
		factory := builtinFactories[name]
		tools, resources, err := factory(deps)
		if err != nil {
			return err
		}
		for _, descriptor := range tools {
			if err := s.registry.Register(descriptor); err != nil {
				return err
			}
		}
		for _, descriptor := range resources {
			if err := s.router.Register(descriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveBuiltins converts pattern(s) – "*" for all, prefix or exact – into a
// sorted list of builtin group names. Duplicate patterns are ignored.
func resolveBuiltins(patterns []string) []string {
	selected := make(map[string]struct{})
	for _, pattern := range patterns {
		for name := range builtinFactories {
			if matchPattern(pattern, name) {
				selected[name] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(selected))
	for name := range selected {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// matchPattern reports whether name satisfies pattern using common CLI
// semantics adopted across the project: "*" matches everything, otherwise a
// pattern is a prefix.
func matchPattern(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

func (s *Service) translatorClient() *translator.Client {
	var options []translator.Option
	if cfg := s.config.Translator; cfg != nil && cfg.URL != "" {
		options = append(options, translator.WithBaseURL(cfg.URL))
	}
	return translator.NewClient(options...)
}

func (s *Service) weatherClient() *weather.Client {
	var options []weather.Option
	if cfg := s.config.Weather; cfg != nil && cfg.URL != "" {
		options = append(options, weather.WithBaseURL(cfg.URL))
	}
	return weather.NewClient(options...)
}
