package team

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentteam/core"
	"github.com/hupe1980/agentteam/tracing"
)

// traceHooks decorates user hooks with span instrumentation. Round spans
// parent to the run-level span; agent spans parent to the currently open
// round span. All backing maps are local to one run and entries are removed
// as spans close, so long-running teams never accumulate state.
type traceHooks struct {
	tracer tracing.Tracer
	user   *Hooks

	traceID    string
	rootSpanID string

	mu               sync.Mutex
	roundSpans       map[int]string
	agentSpans       map[string]string
	currentRoundSpan string
}

func newTraceHooks(tracer tracing.Tracer, teamName, mode, input string, user *Hooks) *traceHooks {
	traceID := tracer.StartTrace("team:"+teamName, map[string]any{
		"team":              teamName,
		"coordination_mode": mode,
		"input":             input,
	})
	rootSpanID := tracer.StartSpan(traceID, "", "team-run", nil)

	return &traceHooks{
		tracer:     tracer,
		user:       user,
		traceID:    traceID,
		rootSpanID: rootSpanID,
		roundSpans: make(map[int]string),
		agentSpans: make(map[string]string),
	}
}

func agentSpanKey(round int, agentName string) string {
	return fmt.Sprintf("%d:%s", round, agentName)
}

// hooks returns the decorated hook set. The caller's original hooks are
// still invoked after the span bookkeeping.
func (th *traceHooks) hooks() *Hooks {
	return &Hooks{
		OnRoundStart: func(round int) {
			spanID := th.tracer.StartSpan(th.traceID, th.rootSpanID,
				fmt.Sprintf("round-%d", round), map[string]any{"round": round})
			th.mu.Lock()
			th.roundSpans[round] = spanID
			th.currentRoundSpan = spanID
			th.mu.Unlock()
			th.user.roundStart(round)
		},
		OnRoundEnd: func(round int, results []core.AgentResponse) {
			th.closeAgentSpans(round, tracing.StatusError, nil)
			th.mu.Lock()
			spanID, ok := th.roundSpans[round]
			delete(th.roundSpans, round)
			if th.currentRoundSpan == spanID {
				th.currentRoundSpan = ""
			}
			th.mu.Unlock()
			if ok {
				th.tracer.EndSpan(spanID, tracing.StatusOK, map[string]any{"results": len(results)})
			}
			th.user.roundEnd(round, results)
		},
		OnAgentStart: func(round int, agentName, input string) {
			th.mu.Lock()
			parent := th.currentRoundSpan
			th.mu.Unlock()
			if parent == "" {
				parent = th.rootSpanID
			}
			spanID := th.tracer.StartSpan(th.traceID, parent,
				"agent:"+agentName, map[string]any{"agent": agentName, "round": round})
			th.mu.Lock()
			th.agentSpans[agentSpanKey(round, agentName)] = spanID
			th.mu.Unlock()
			th.user.agentStart(round, agentName, input)
		},
		OnAgentEnd: func(round int, agentName string, resp core.AgentResponse) {
			th.mu.Lock()
			spanID, ok := th.agentSpans[agentSpanKey(round, agentName)]
			delete(th.agentSpans, agentSpanKey(round, agentName))
			th.mu.Unlock()
			if ok {
				th.tracer.EndSpan(spanID, tracing.StatusOK, map[string]any{
					"tokens": resp.Usage.TotalTokens,
				})
			}
			th.user.agentEnd(round, agentName, resp)
		},
		OnError: func(err error) {
			th.user.onError(err)
		},
		OnConsensus: func(round int, text string) {
			th.user.onConsensus(round, text)
		},
	}
}

// closeAgentSpans ends any still-open agent spans for the round. Round -1
// closes every remaining agent span.
func (th *traceHooks) closeAgentSpans(round int, status tracing.SpanStatus, metadata map[string]any) {
	th.mu.Lock()
	var stale []string
	prefix := fmt.Sprintf("%d:", round)
	for key, spanID := range th.agentSpans {
		if round < 0 || len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			stale = append(stale, spanID)
			delete(th.agentSpans, key)
		}
	}
	th.mu.Unlock()
	for _, spanID := range stale {
		th.tracer.EndSpan(spanID, status, metadata)
	}
}

// finish closes the run-level span and the trace. On failure the span
// carries the error message; the error itself is never altered.
func (th *traceHooks) finish(result *core.TeamResult, err error) {
	status := tracing.StatusOK
	var metadata map[string]any
	var errMeta map[string]any
	if err != nil {
		status = tracing.StatusError
		errMeta = map[string]any{"error": err.Error()}
		metadata = errMeta
	} else if result != nil {
		metadata = map[string]any{
			"rounds":       result.Rounds,
			"total_tokens": result.TotalUsage.TotalTokens,
		}
	}

	// A run aborted mid-round leaves spans open; close them before the root,
	// carrying the failure context.
	th.closeAgentSpans(-1, status, errMeta)
	th.mu.Lock()
	var rounds []string
	for round, spanID := range th.roundSpans {
		rounds = append(rounds, spanID)
		delete(th.roundSpans, round)
	}
	th.currentRoundSpan = ""
	th.mu.Unlock()
	for _, spanID := range rounds {
		th.tracer.EndSpan(spanID, status, errMeta)
	}

	th.tracer.EndSpan(th.rootSpanID, status, metadata)
	th.tracer.EndTrace(th.traceID)
}
