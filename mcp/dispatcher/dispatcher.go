package dispatcher

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/fnmcp/fnmcp/mcp/registry"
	"github.com/fnmcp/fnmcp/mcp/router"
)

const (
	defaultWorkers = 8
	defaultTimeout = 15 * time.Minute
)

// Options tunes a dispatcher instance.
type Options struct {
	// Workers bounds the number of concurrently executing handlers.
	Workers int
	// Timeout converts invocations exceeding this duration into a timeout
	// envelope; the worker slot is reclaimed when the handler returns.
	Timeout time.Duration
	// Logger receives handler fault records. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Dispatcher routes validated invocations onto a bounded worker pool and
// converts every outcome into a Result envelope.
type Dispatcher struct {
	slots   chan struct{}
	timeout time.Duration
	logger  *zap.Logger
}

// New creates a dispatcher applying defaults for unset options.
func New(options Options) *Dispatcher {
	workers := options.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		slots:   make(chan struct{}, workers),
		timeout: timeout,
		logger:  logger,
	}
}

// CallTool validates args against the tool's schema and executes its handler.
// The handler is never invoked when validation fails.
func (d *Dispatcher) CallTool(ctx context.Context, descriptor *registry.ToolDescriptor, args map[string]interface{}) Result {
	coerced, err := validateArguments(descriptor.InputSchema, args)
	if err != nil {
		return Failure(KindValidation, "%v", err)
	}
	return d.run(ctx, descriptor.Name, func(ctx context.Context) (interface{}, error) {
		return descriptor.Handler(ctx, coerced)
	})
}

// ReadResource executes a resolved resource handler with its bound path
// parameters under the same pooling, timeout and fault policy as tool calls.
func (d *Dispatcher) ReadResource(ctx context.Context, descriptor *router.ResourceDescriptor, params map[string]string) Result {
	return d.run(ctx, descriptor.Template, func(ctx context.Context) (interface{}, error) {
		return descriptor.Handler(ctx, params)
	})
}

type outcome struct {
	payload interface{}
	err     error
	panic   interface{}
}

func (d *Dispatcher) run(ctx context.Context, name string, fn func(ctx context.Context) (interface{}, error)) Result {
	deadline := time.NewTimer(d.timeout)
	defer deadline.Stop()

	// Acquire a worker slot; admission itself competes against caller
	// cancellation and the invocation deadline.
	select {
	case d.slots <- struct{}{}:
	case <-ctx.Done():
		return Failure(KindCanceled, "invocation canceled: %v", ctx.Err())
	case <-deadline.C:
		return Failure(KindTimeout, "invocation exceeded %s waiting for a worker", d.timeout)
	}

	done := make(chan outcome, 1)
	go func() {
		// The slot is released when the handler returns, even after the
		// caller stopped waiting for the result.
		defer func() { <-d.slots }()
		defer func() {
			if recovered := recover(); recovered != nil {
				done <- outcome{panic: recovered}
			}
		}()
		payload, err := fn(ctx)
		done <- outcome{payload: payload, err: err}
	}()

	select {
	case result := <-done:
		return d.complete(name, result)
	case <-ctx.Done():
		d.logger.Warn("invocation canceled", zap.String("tool", name), zap.Error(ctx.Err()))
		return Failure(KindCanceled, "invocation canceled: %v", ctx.Err())
	case <-deadline.C:
		d.logger.Warn("invocation timed out", zap.String("tool", name), zap.Duration("timeout", d.timeout))
		return Failure(KindTimeout, "invocation exceeded %s", d.timeout)
	}
}

func (d *Dispatcher) complete(name string, result outcome) Result {
	if result.panic != nil {
		d.logger.Error("handler panicked", zap.String("tool", name), zap.Any("panic", result.panic))
		return Failure(KindCallableFault, "handler panicked: %v", result.panic)
	}
	if result.err != nil {
		d.logger.Error("handler failed", zap.String("tool", name), zap.Error(result.err))
		return Failure(KindCallableFault, "%v", result.err)
	}
	if result.payload != nil {
		if _, err := json.Marshal(result.payload); err != nil {
			d.logger.Error("handler returned non-serializable result", zap.String("tool", name), zap.Error(err))
			return Failure(KindSerialization, "result is not serializable: %v", err)
		}
	}
	return Success(result.payload)
}
