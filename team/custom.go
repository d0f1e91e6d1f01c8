package team

import (
	"context"
	"errors"

	"github.com/hupe1980/agentteam/comm"
	"github.com/hupe1980/agentteam/core"
)

// TeamContext supplies a caller-supplied coordination function with fresh,
// run-scoped communication primitives plus round and result bookkeeping the
// function manages itself. Nothing in it survives the run.
type TeamContext struct {
	// Blackboard is a shared key/value workspace for this run.
	Blackboard *comm.Blackboard

	// CurrentRound is owned by the coordination function; the engine
	// performs no implicit looping in custom mode.
	CurrentRound int

	// PreviousResults accumulates whatever the coordination function
	// chooses to record between its own rounds.
	PreviousResults []core.AgentResponse

	bus *comm.MessageBus
}

// SendMessage appends a message to the run-scoped bus. An empty to
// broadcasts to all agents.
func (tc *TeamContext) SendMessage(from, to, content string) comm.Message {
	return tc.bus.Send(from, to, content)
}

// Messages returns messages addressed to the named agent, including
// broadcasts.
func (tc *TeamContext) Messages(agentName string) []comm.Message {
	return tc.bus.MessagesFor(agentName)
}

// Bus exposes the underlying message bus, e.g. for post-run export.
func (tc *TeamContext) Bus() *comm.MessageBus { return tc.bus }

// runCustom delegates entirely to the configured coordination function and
// passes its result through verbatim.
func (t *Team) runCustom(ctx context.Context, input string) (*core.TeamResult, error) {
	tc := &TeamContext{
		Blackboard: comm.NewBlackboard(),
		bus:        comm.NewMessageBus(),
	}

	result, err := t.cfg.CoordinationFn(ctx, t.agents, input, tc)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("coordination function returned no result")
	}
	return result, nil
}
