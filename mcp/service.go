package mcp

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/fnmcp/fnmcp/mcp/cache"
	"github.com/fnmcp/fnmcp/mcp/config"
	"github.com/fnmcp/fnmcp/mcp/dispatcher"
	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
)

// Service bundles configuration, the tool registry, the resource router, the
// invocation dispatcher and the shared cache. All heavy lifting during
// instantiation lives in bootstrap.go to keep this file focused on the public
// surface.
type Service struct {
	started int32
	config  *config.Config
	logger  *zap.Logger

	registry   *registry.Registry
	router     *router.Router
	dispatcher *dispatcher.Dispatcher
	cache      *cache.Cache

	// Declarations supplied through options, registered during bootstrap so
	// that registration faults abort construction.
	pendingTools     []*registry.ToolDescriptor
	pendingResources []*router.ResourceDescriptor
}

// Registry returns the tool registry. Callers must treat descriptors as
// read-only.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Router returns the resource router.
func (s *Service) Router() *router.Router { return s.router }

// Cache returns the shared cache instance injected into cache-backed tools.
func (s *Service) Cache() *cache.Cache { return s.cache }

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// ToolNames returns all registered tool names. The slice is a copy and
// therefore safe for callers to modify.
func (s *Service) ToolNames() []string { return s.registry.Names() }

// ToolMetadata returns description and input schema for a named tool when
// present. The third return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	descriptor, err := s.registry.Lookup(name)
	if err != nil {
		return "", nil, false
	}
	return descriptor.Description, descriptor.InputSchema, true
}

// Option modifies a service instance before it is initialised. Users can pass
// an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTools declares additional tool descriptors that are registered during
// bootstrap, after the built-in set.
func WithTools(descriptors ...*registry.ToolDescriptor) Option {
	return func(s *Service) {
		s.pendingTools = append(s.pendingTools, descriptors...)
	}
}

// WithResources declares additional resource descriptors that are registered
// during bootstrap.
func WithResources(descriptors ...*router.ResourceDescriptor) Option {
	return func(s *Service) {
		s.pendingResources = append(s.pendingResources, descriptors...)
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig mirrors New with an explicit configuration instance.
// Additional options may be supplied after the configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Start marks the service as serving. Multiple invocations are safe –
// subsequent calls will be ignored.
func (s *Service) Start(_ context.Context) error {
	atomic.CompareAndSwapInt32(&s.started, 0, 1)
	return nil
}

// Shutdown tears the service down, releasing the shared cache. Additional
// invocations after the first successful call have no effect.
func (s *Service) Shutdown(_ context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.cache.Close()
}

// ExecuteTool looks the named tool up and dispatches the invocation. Lookup,
// validation, execution and serialization faults are all returned as error
// envelopes, never as raw failures.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) dispatcher.Result {
	descriptor, err := s.registry.Lookup(name)
	if err != nil {
		return dispatcher.Failure(dispatcher.KindNotFound, "%v", err)
	}
	return s.dispatcher.CallTool(ctx, descriptor, args)
}

// ReadResource resolves uri against the registered templates and dispatches
// the resource handler with the bound path parameters.
func (s *Service) ReadResource(ctx context.Context, uri string) dispatcher.Result {
	descriptor, params, err := s.router.Resolve(uri)
	if err != nil {
		return dispatcher.Failure(dispatcher.KindNotFound, "%v", err)
	}
	return s.dispatcher.ReadResource(ctx, descriptor, params)
}

// RegisterToolDescriptor adds one tool descriptor to the registry.
func (s *Service) RegisterToolDescriptor(descriptor *registry.ToolDescriptor) error {
	return s.registry.Register(descriptor)
}

// RegisterResource adds one resource descriptor to the router.
func (s *Service) RegisterResource(descriptor *router.ResourceDescriptor) error {
	return s.router.Register(descriptor)
}

// RegisterTool derives schemas from the In and Out types and registers fn
// under the given name.
func RegisterTool[In any, Out any](s *Service, name, description string, fn func(ctx context.Context, in In) (Out, error)) error {
	descriptor, err := registry.Typed(name, description, fn)
	if err != nil {
		return err
	}
	return s.registry.Register(descriptor)
}
