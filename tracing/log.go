package tracing

import (
	"github.com/google/uuid"

	json "github.com/goccy/go-json"

	"github.com/hupe1980/agentteam/logging"
)

// LogTracer emits trace and span lifecycle events to a structured logger.
// It keeps no per-span state, so it is safe for long-running processes.
type LogTracer struct {
	logger logging.Logger
}

// NewLogTracer constructs a tracer writing to the given logger.
func NewLogTracer(logger logging.Logger) *LogTracer {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &LogTracer{logger: logger}
}

// StartTrace implements Tracer.
func (t *LogTracer) StartTrace(name string, metadata map[string]any) string {
	id := uuid.NewString()
	t.logger.Info("trace started", "trace_id", id, "name", name, "metadata", renderMetadata(metadata))
	return id
}

// StartSpan implements Tracer.
func (t *LogTracer) StartSpan(traceID, parentSpanID, name string, metadata map[string]any) string {
	id := uuid.NewString()
	t.logger.Debug("span started",
		"trace_id", traceID, "span_id", id, "parent_span_id", parentSpanID,
		"name", name, "metadata", renderMetadata(metadata))
	return id
}

// EndSpan implements Tracer.
func (t *LogTracer) EndSpan(spanID string, status SpanStatus, metadata map[string]any) {
	if status == StatusError {
		t.logger.Error("span ended", "span_id", spanID, "status", string(status), "metadata", renderMetadata(metadata))
		return
	}
	t.logger.Debug("span ended", "span_id", spanID, "status", string(status), "metadata", renderMetadata(metadata))
}

// EndTrace implements Tracer.
func (t *LogTracer) EndTrace(traceID string) {
	t.logger.Info("trace ended", "trace_id", traceID)
}

func renderMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
