package tracing

import (
	"sync"

	"github.com/google/uuid"
)

// RecordedSpan captures the full lifecycle of one span for inspection.
type RecordedSpan struct {
	ID           string
	TraceID      string
	ParentSpanID string
	Name         string
	StartMeta    map[string]any
	EndMeta      map[string]any
	Status       SpanStatus
	Ended        bool
}

// RecordedTrace captures one trace container.
type RecordedTrace struct {
	ID       string
	Name     string
	Metadata map[string]any
	Ended    bool
}

// Recorder is an in-memory Tracer retaining every trace and span. It is
// intended for tests and local inspection, not production use.
type Recorder struct {
	mu     sync.Mutex
	traces []*RecordedTrace
	spans  []*RecordedSpan
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// StartTrace implements Tracer.
func (r *Recorder) StartTrace(name string, metadata map[string]any) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := &RecordedTrace{ID: uuid.NewString(), Name: name, Metadata: metadata}
	r.traces = append(r.traces, t)
	return t.ID
}

// StartSpan implements Tracer.
func (r *Recorder) StartSpan(traceID, parentSpanID, name string, metadata map[string]any) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &RecordedSpan{
		ID:           uuid.NewString(),
		TraceID:      traceID,
		ParentSpanID: parentSpanID,
		Name:         name,
		StartMeta:    metadata,
	}
	r.spans = append(r.spans, s)
	return s.ID
}

// EndSpan implements Tracer.
func (r *Recorder) EndSpan(spanID string, status SpanStatus, metadata map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spans {
		if s.ID == spanID {
			s.Status = status
			s.EndMeta = metadata
			s.Ended = true
			return
		}
	}
}

// EndTrace implements Tracer.
func (r *Recorder) EndTrace(traceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.traces {
		if t.ID == traceID {
			t.Ended = true
			return
		}
	}
}

// Traces returns all recorded traces in start order.
func (r *Recorder) Traces() []*RecordedTrace {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*RecordedTrace, len(r.traces))
	copy(out, r.traces)
	return out
}

// Spans returns all recorded spans in start order.
func (r *Recorder) Spans() []*RecordedSpan {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*RecordedSpan, len(r.spans))
	copy(out, r.spans)
	return out
}

// SpansNamed returns all spans with the given name in start order.
func (r *Recorder) SpansNamed(name string) []*RecordedSpan {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*RecordedSpan
	for _, s := range r.spans {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
