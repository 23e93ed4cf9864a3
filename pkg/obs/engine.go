package obs

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/arbor-ui/arbor/pkg/backend"
	"github.com/arbor-ui/arbor/pkg/mount"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

const defaultTracerName = "arbor"

// Engine runs mount, patch, and hydration passes with metrics and a
// span around each pass. The underlying engine is untouched; an Engine
// is a drop-in for callers that would otherwise call the mount package
// directly.
//
// The tracer comes from the global OpenTelemetry tracer provider.
// Configure the provider in main() before rendering.
type Engine struct {
	metrics *Metrics
	tracer  trace.Tracer
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTracerName overrides the tracer name.
func WithTracerName(name string) EngineOption {
	return func(e *Engine) {
		e.tracer = otel.Tracer(name)
	}
}

// NewEngine creates an instrumented engine around the given metrics.
// A nil metrics disables collection but keeps tracing.
func NewEngine(m *Metrics, opts ...EngineOption) *Engine {
	e := &Engine{
		metrics: m,
		tracer:  otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mount mounts node under parent inside a span.
func (e *Engine) Mount(ctx context.Context, b backend.Backend, node *vtree.VNode, parent backend.NodeRef) *mount.State {
	_, span := e.tracer.Start(ctx, "arbor.mount")
	defer span.End()

	st := mount.Mount(b, node, parent, nil)
	if e.metrics != nil {
		e.metrics.mountsTotal.Inc()
		e.metrics.mountedStates.Inc()
	}
	return st
}

// Patch converges st onto next inside a span, recording the pass
// duration.
func (e *Engine) Patch(ctx context.Context, b backend.Backend, st *mount.State, next *vtree.VNode) *mount.State {
	_, span := e.tracer.Start(ctx, "arbor.patch")
	defer span.End()

	start := time.Now()
	out := mount.Patch(b, st, next)
	if e.metrics != nil {
		e.metrics.patchesTotal.Inc()
		e.metrics.patchDuration.Observe(time.Since(start).Seconds())
	}
	return out
}

// Unmount tears st down inside a span.
func (e *Engine) Unmount(ctx context.Context, b backend.Backend, st *mount.State) {
	_, span := e.tracer.Start(ctx, "arbor.unmount")
	defer span.End()

	mount.Unmount(b, st)
	if e.metrics != nil {
		e.metrics.mountedStates.Dec()
	}
}

// Hydrate adopts the nodes under parent inside a span. Mismatches are
// recorded on the span and in the hydration outcome counter.
func (e *Engine) Hydrate(ctx context.Context, b backend.Backend, node *vtree.VNode, parent backend.NodeRef) (*mount.State, error) {
	_, span := e.tracer.Start(ctx, "arbor.hydrate")
	defer span.End()

	st, err := mount.Hydrate(b, node, parent)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hydration mismatch")
		if e.metrics != nil {
			e.metrics.hydrationsTotal.WithLabelValues("mismatch").Inc()
		}
		return nil, err
	}
	if e.metrics != nil {
		e.metrics.hydrationsTotal.WithLabelValues("adopted").Inc()
		e.metrics.mountedStates.Inc()
	}
	return st, nil
}

// HydrateOrMount hydrates with remount fallback inside a span. The
// span carries the outcome as an attribute.
func (e *Engine) HydrateOrMount(ctx context.Context, b backend.Backend, node *vtree.VNode, parent backend.NodeRef) *mount.State {
	ctx, span := e.tracer.Start(ctx, "arbor.hydrate_or_mount")
	defer span.End()

	st, err := mount.Hydrate(b, node, parent)
	if err == nil {
		span.SetAttributes(attribute.String("arbor.outcome", "adopted"))
		if e.metrics != nil {
			e.metrics.hydrationsTotal.WithLabelValues("adopted").Inc()
			e.metrics.mountedStates.Inc()
		}
		return st
	}

	span.RecordError(err)
	span.SetAttributes(attribute.String("arbor.outcome", "fallback"))
	if e.metrics != nil {
		e.metrics.hydrationsTotal.WithLabelValues("fallback").Inc()
	}
	for child := b.FirstChild(parent); child != nil; child = b.FirstChild(parent) {
		b.RemoveChild(parent, child)
	}
	return e.Mount(ctx, b, node, parent)
}
