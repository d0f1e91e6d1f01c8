package tracing

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelTracer adapts an OpenTelemetry trace.Tracer to the Tracer capability.
// A trace maps to a root span; nested spans parent to it through the stored
// span contexts. Bookkeeping for a span is released when it ends, keeping
// memory bounded on long-running teams.
type OTelTracer struct {
	tracer trace.Tracer

	mu     sync.Mutex
	traces map[string]*openSpan // trace id -> root span
	spans  map[string]*openSpan // span id -> open span
}

type openSpan struct {
	ctx  context.Context
	span trace.Span
}

// NewOTelTracer wraps an OpenTelemetry tracer.
func NewOTelTracer(tracer trace.Tracer) *OTelTracer {
	return &OTelTracer{
		tracer: tracer,
		traces: make(map[string]*openSpan),
		spans:  make(map[string]*openSpan),
	}
}

// StartTrace implements Tracer.
func (t *OTelTracer) StartTrace(name string, metadata map[string]any) string {
	ctx, span := t.tracer.Start(context.Background(), name,
		trace.WithAttributes(toAttributes(metadata)...))

	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.traces[id] = &openSpan{ctx: ctx, span: span}
	return id
}

// StartSpan implements Tracer. Unknown trace or parent identifiers yield a
// detached span rather than an error so observability never fails a run.
func (t *OTelTracer) StartSpan(traceID, parentSpanID, name string, metadata map[string]any) string {
	t.mu.Lock()
	parentCtx := context.Background()
	if parentSpanID != "" {
		if parent, ok := t.spans[parentSpanID]; ok {
			parentCtx = parent.ctx
		}
	} else if root, ok := t.traces[traceID]; ok {
		parentCtx = root.ctx
	}
	t.mu.Unlock()

	ctx, span := t.tracer.Start(parentCtx, name,
		trace.WithAttributes(toAttributes(metadata)...))

	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans[id] = &openSpan{ctx: ctx, span: span}
	return id
}

// EndSpan implements Tracer.
func (t *OTelTracer) EndSpan(spanID string, status SpanStatus, metadata map[string]any) {
	t.mu.Lock()
	open, ok := t.spans[spanID]
	if ok {
		delete(t.spans, spanID)
	}
	t.mu.Unlock()
	if !ok {
		return
	}

	open.span.SetAttributes(toAttributes(metadata)...)
	if status == StatusError {
		msg, _ := metadata["error"].(string)
		open.span.SetStatus(codes.Error, msg)
	} else {
		open.span.SetStatus(codes.Ok, "")
	}
	open.span.End()
}

// EndTrace implements Tracer.
func (t *OTelTracer) EndTrace(traceID string) {
	t.mu.Lock()
	root, ok := t.traces[traceID]
	if ok {
		delete(t.traces, traceID)
	}
	t.mu.Unlock()
	if !ok {
		return
	}
	root.span.End()
}

func toAttributes(metadata map[string]any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(metadata))
	for k, v := range metadata {
		switch val := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(k, val))
		case bool:
			attrs = append(attrs, attribute.Bool(k, val))
		case int:
			attrs = append(attrs, attribute.Int(k, val))
		case int64:
			attrs = append(attrs, attribute.Int64(k, val))
		case float64:
			attrs = append(attrs, attribute.Float64(k, val))
		default:
			attrs = append(attrs, attribute.String(k, fmt.Sprint(val)))
		}
	}
	return attrs
}
