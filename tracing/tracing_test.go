package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestRecorder_CapturesTraceLifecycle(t *testing.T) {
	r := NewRecorder()

	traceID := r.StartTrace("team:test", map[string]any{"team": "test"})
	rootID := r.StartSpan(traceID, "", "team-run", nil)
	childID := r.StartSpan(traceID, rootID, "round-1", map[string]any{"round": 1})

	r.EndSpan(childID, StatusOK, map[string]any{"results": 2})
	r.EndSpan(rootID, StatusError, map[string]any{"error": "boom"})
	r.EndTrace(traceID)

	traces := r.Traces()
	require.Len(t, traces, 1)
	assert.Equal(t, "team:test", traces[0].Name)
	assert.Equal(t, "test", traces[0].Metadata["team"])
	assert.True(t, traces[0].Ended)

	spans := r.Spans()
	require.Len(t, spans, 2)
	assert.Equal(t, "team-run", spans[0].Name)
	assert.Empty(t, spans[0].ParentSpanID)
	assert.Equal(t, StatusError, spans[0].Status)
	assert.Equal(t, "boom", spans[0].EndMeta["error"])

	assert.Equal(t, rootID, spans[1].ParentSpanID)
	assert.Equal(t, StatusOK, spans[1].Status)
	assert.Equal(t, 2, spans[1].EndMeta["results"])
}

func TestRecorder_SpansNamedReturnsStartOrder(t *testing.T) {
	r := NewRecorder()
	traceID := r.StartTrace("t", nil)

	first := r.StartSpan(traceID, "", "agent:a", nil)
	r.StartSpan(traceID, "", "agent:b", nil)
	second := r.StartSpan(traceID, "", "agent:a", nil)

	spans := r.SpansNamed("agent:a")
	require.Len(t, spans, 2)
	assert.Equal(t, first, spans[0].ID)
	assert.Equal(t, second, spans[1].ID)
	assert.Empty(t, r.SpansNamed("agent:c"))
}

func TestRecorder_EndUnknownIDsIsHarmless(t *testing.T) {
	r := NewRecorder()
	r.EndSpan("missing", StatusOK, nil)
	r.EndTrace("missing")
	assert.Empty(t, r.Spans())
	assert.Empty(t, r.Traces())
}

func TestNoop_DiscardsEverything(t *testing.T) {
	var n Noop
	traceID := n.StartTrace("t", nil)
	assert.Empty(t, traceID)
	spanID := n.StartSpan(traceID, "", "s", nil)
	assert.Empty(t, spanID)
	n.EndSpan(spanID, StatusOK, nil)
	n.EndTrace(traceID)
}

func TestOTelTracer_ReleasesBookkeepingOnEnd(t *testing.T) {
	tracer := NewOTelTracer(noop.NewTracerProvider().Tracer("test"))

	traceID := tracer.StartTrace("team:test", map[string]any{"team": "test"})
	rootID := tracer.StartSpan(traceID, "", "team-run", nil)
	childID := tracer.StartSpan(traceID, rootID, "round-1", map[string]any{"round": 1})

	tracer.mu.Lock()
	assert.Len(t, tracer.traces, 1)
	assert.Len(t, tracer.spans, 2)
	tracer.mu.Unlock()

	tracer.EndSpan(childID, StatusOK, nil)
	tracer.EndSpan(rootID, StatusError, map[string]any{"error": "boom"})
	tracer.EndTrace(traceID)

	tracer.mu.Lock()
	assert.Empty(t, tracer.traces)
	assert.Empty(t, tracer.spans)
	tracer.mu.Unlock()
}

func TestOTelTracer_UnknownParentStartsDetachedSpan(t *testing.T) {
	tracer := NewOTelTracer(noop.NewTracerProvider().Tracer("test"))

	spanID := tracer.StartSpan("no-such-trace", "no-such-parent", "orphan", nil)
	assert.NotEmpty(t, spanID)

	tracer.EndSpan(spanID, StatusOK, nil)
	tracer.EndSpan(spanID, StatusOK, nil) // double end is a no-op

	tracer.mu.Lock()
	assert.Empty(t, tracer.spans)
	tracer.mu.Unlock()
}

func TestToAttributes_CoversValueKinds(t *testing.T) {
	attrs := toAttributes(map[string]any{
		"s": "text",
		"b": true,
		"i": 42,
		"f": 1.5,
		"x": []string{"fallback"},
	})
	assert.Len(t, attrs, 5)

	byKey := make(map[string]string)
	for _, a := range attrs {
		byKey[string(a.Key)] = a.Value.Emit()
	}
	assert.Equal(t, "text", byKey["s"])
	assert.Equal(t, "true", byKey["b"])
	assert.Equal(t, "42", byKey["i"])
	assert.Equal(t, "1.5", byKey["f"])
	assert.Equal(t, "[fallback]", byKey["x"])
}
