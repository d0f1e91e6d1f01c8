// Package tracing defines the optional observability capability consumed by
// the team engine: a trace groups one coordinated run, spans mark nested
// timed intervals within it (run, rounds, individual agent calls).
//
// The engine never depends on a concrete backend. This package ships a Noop
// implementation, a logger-backed tracer, an in-memory Recorder for tests and
// an OpenTelemetry adapter.
package tracing

// SpanStatus marks how a span concluded.
type SpanStatus string

const (
	// StatusOK marks a span that completed successfully.
	StatusOK SpanStatus = "ok"
	// StatusError marks a span that ended with a failure.
	StatusError SpanStatus = "error"
)

// Tracer is the minimal tracing capability. Implementations must be safe for
// concurrent use; span identifiers are opaque strings issued by the tracer.
//
// Implementations must not retain bookkeeping for closed spans: the engine
// may run indefinitely and relies on per-span state being released on
// EndSpan/EndTrace.
type Tracer interface {
	// StartTrace opens a run-level container and returns its identifier.
	StartTrace(name string, metadata map[string]any) string

	// StartSpan opens a span inside a trace. An empty parentSpanID parents
	// the span directly to the trace.
	StartSpan(traceID, parentSpanID, name string, metadata map[string]any) string

	// EndSpan closes a span with a terminal status and optional metadata.
	EndSpan(spanID string, status SpanStatus, metadata map[string]any)

	// EndTrace closes the run-level container.
	EndTrace(traceID string)
}

// Noop discards all tracing calls. Useful when observability is disabled.
type Noop struct{}

// StartTrace implements Tracer.
func (Noop) StartTrace(string, map[string]any) string { return "" }

// StartSpan implements Tracer.
func (Noop) StartSpan(string, string, string, map[string]any) string { return "" }

// EndSpan implements Tracer.
func (Noop) EndSpan(string, SpanStatus, map[string]any) {}

// EndTrace implements Tracer.
func (Noop) EndTrace(string) {}
