package mcp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fnmcp/fnmcp/mcp/cache"
	"github.com/fnmcp/fnmcp/mcp/config"
	"github.com/fnmcp/fnmcp/mcp/dispatcher"
	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. Its sole responsibility is to orchestrate the individual
// preparation steps so that the logic stays easy to read and to maintain.
func (s *Service) init(_ context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	if err := s.initDispatcher(); err != nil {
		return err
	}

	// Built-in tools and resources selected by config patterns.
	if err := s.registerBuiltins(); err != nil {
		return fmt.Errorf("register builtins: %w", err)
	}

	// Declarations supplied through options. A fault here aborts startup so
	// that schema and naming errors never reach a live request.
	for _, descriptor := range s.pendingTools {
		if err := s.registry.Register(descriptor); err != nil {
			return err
		}
	}
	for _, descriptor := range s.pendingResources {
		if err := s.router.Register(descriptor); err != nil {
			return err
		}
	}
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if len(s.config.Builtins) == 0 { // expose every builtin by default
		s.config.Builtins = append(s.config.Builtins, "*")
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.registry = registry.New()
	s.router = router.New()
	s.cache = cache.New()
}

// initDispatcher assembles dispatcher options from the configuration.
func (s *Service) initDispatcher() error {
	options := dispatcher.Options{Logger: s.logger}
	if cfg := s.config.Dispatcher; cfg != nil {
		options.Workers = cfg.Workers
		timeout, err := cfg.TimeoutDuration()
		if err != nil {
			return err
		}
		options.Timeout = timeout
	}
	s.dispatcher = dispatcher.New(options)
	return nil
}
