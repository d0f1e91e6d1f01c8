package team

import "github.com/hupe1980/agentteam/core"

// Hooks exposes lifecycle callbacks fired during a team run. All fields are
// optional; nil callbacks are skipped. Callbacks are invoked synchronously
// from the coordinating goroutine, so implementations should be fast and
// must not block.
type Hooks struct {
	// OnRoundStart fires before any agent of the round is invoked.
	OnRoundStart func(round int)

	// OnRoundEnd fires after the round completes with the responses counted
	// for that round.
	OnRoundEnd func(round int, results []core.AgentResponse)

	// OnAgentStart fires before an agent call with the exact input it receives.
	OnAgentStart func(round int, agentName, input string)

	// OnAgentEnd fires after a successful agent call. Failed calls fire
	// OnError instead.
	OnAgentEnd func(round int, agentName string, resp core.AgentResponse)

	// OnError fires once for every participant failure, regardless of
	// whether the mode tolerates or propagates it.
	OnError func(err error)

	// OnConsensus fires when a debate round converges.
	OnConsensus func(round int, text string)
}

// The fire helpers are nil-safe so runners never need to guard hook calls.

func (h *Hooks) roundStart(round int) {
	if h != nil && h.OnRoundStart != nil {
		h.OnRoundStart(round)
	}
}

func (h *Hooks) roundEnd(round int, results []core.AgentResponse) {
	if h != nil && h.OnRoundEnd != nil {
		h.OnRoundEnd(round, results)
	}
}

func (h *Hooks) agentStart(round int, agentName, input string) {
	if h != nil && h.OnAgentStart != nil {
		h.OnAgentStart(round, agentName, input)
	}
}

func (h *Hooks) agentEnd(round int, agentName string, resp core.AgentResponse) {
	if h != nil && h.OnAgentEnd != nil {
		h.OnAgentEnd(round, agentName, resp)
	}
}

func (h *Hooks) onError(err error) {
	if h != nil && h.OnError != nil {
		h.OnError(err)
	}
}

func (h *Hooks) onConsensus(round int, text string) {
	if h != nil && h.OnConsensus != nil {
		h.OnConsensus(round, text)
	}
}
