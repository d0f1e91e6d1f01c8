package agentteam

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
	"github.com/hupe1980/agentteam/team"
)

func TestSequential(t *testing.T) {
	a := core.NewMockAgent("writer")
	a.QueueResponses("draft")
	b := core.NewMockAgent("editor")
	b.QueueResponses("polished")

	tm, err := Sequential("pipeline", []core.Agent{a, b})
	require.NoError(t, err)
	assert.Equal(t, "pipeline", tm.Name())
	assert.Equal(t, team.ModeSequential, tm.Mode())

	result, err := tm.Run(context.Background(), "write about Go")
	require.NoError(t, err)
	assert.Equal(t, "polished", result.FinalOutput)
	assert.Equal(t, []string{"draft"}, b.Inputs())
}

func TestParallel(t *testing.T) {
	a := core.NewMockAgent("a")
	a.QueueResponses("yes")
	b := core.NewMockAgent("b")
	b.QueueResponses("yes")
	c := core.NewMockAgent("c")
	c.QueueResponses("no")

	tm, err := Parallel("vote", []core.Agent{a, b, c}, aggregate.MajorityVote)
	require.NoError(t, err)

	result, err := tm.Run(context.Background(), "approve?")
	require.NoError(t, err)
	assert.Equal(t, "yes", result.FinalOutput)
	assert.Len(t, result.AgentResults, 3)
}

func TestDebate(t *testing.T) {
	a := core.NewMockAgent("optimist")
	a.QueueResponses("position-a", "agreed")
	b := core.NewMockAgent("skeptic")
	b.QueueResponses("position-b", "agreed")

	tm, err := Debate("panel", []core.Agent{a, b}, nil, func(o *Options) {
		o.MaxRounds = 3
	})
	require.NoError(t, err)

	result, err := tm.Run(context.Background(), "is it safe?")
	require.NoError(t, err)
	assert.Equal(t, "agreed", result.FinalOutput)
	assert.Equal(t, 2, result.Rounds)
}

func TestSupervisor(t *testing.T) {
	boss := core.NewMockAgent("boss")
	boss.QueueResponses("[DELEGATE: worker] compute it", "[FINAL] 42")
	worker := core.NewMockAgent("worker")
	worker.QueueResponses("computed")

	tm, err := Supervisor("org", boss, []core.Agent{worker})
	require.NoError(t, err)

	result, err := tm.Run(context.Background(), "task")
	require.NoError(t, err)
	assert.Equal(t, "42", result.FinalOutput)
	assert.Equal(t, 1, worker.CallCount())
}

func TestOptionsAreApplied(t *testing.T) {
	a := core.NewMockAgent("a")
	a.QueueResponses("out")

	var started int
	tm, err := Sequential("hooked", []core.Agent{a}, func(o *Options) {
		o.Hooks = &team.Hooks{
			OnAgentStart: func(int, string, string) { started++ },
		}
	})
	require.NoError(t, err)
	_, err = tm.Run(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, 1, started)
}
