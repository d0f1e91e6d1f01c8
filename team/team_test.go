package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
)

func TestNew_RequiresAgents(t *testing.T) {
	_, err := New(Config{Name: "empty", Mode: ModeSequential})
	assert.ErrorIs(t, err, ErrNoAgents)
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := New(Config{
		Name:   "bad",
		Agents: core.Members(core.NewMockAgent("a")),
		Mode:   "round-robin",
	})
	assert.ErrorContains(t, err, `unknown coordination mode: "round-robin"`)
}

func TestNew_CustomRequiresCoordinationFn(t *testing.T) {
	_, err := New(Config{
		Name:   "custom",
		Agents: core.Members(core.NewMockAgent("a")),
		Mode:   ModeCustom,
	})
	assert.ErrorIs(t, err, ErrNoCoordinationFn)
}

func TestNew_CustomAggregationRequiresReducer(t *testing.T) {
	_, err := New(Config{
		Name:        "parallel",
		Agents:      core.Members(core.NewMockAgent("a")),
		Mode:        ModeParallel,
		Aggregation: aggregate.Custom,
	})
	assert.ErrorContains(t, err, "requires a custom reducer")
}

func TestNew_UnknownAggregationStrategy(t *testing.T) {
	_, err := New(Config{
		Name:        "parallel",
		Agents:      core.Members(core.NewMockAgent("a")),
		Mode:        ModeParallel,
		Aggregation: "median",
	})
	assert.ErrorContains(t, err, "unknown aggregation strategy")
}

func TestNew_NormalizesEmptyRoles(t *testing.T) {
	tm, err := New(Config{
		Name:   "roles",
		Agents: []core.AgentRole{{Agent: core.NewMockAgent("a")}},
		Mode:   ModeSequential,
	})
	require.NoError(t, err)
	assert.Equal(t, core.RoleMember, tm.agents[0].Role)
}

func TestNew_DoesNotMutateCallerConfig(t *testing.T) {
	roles := []core.AgentRole{{Agent: core.NewMockAgent("a")}}
	_, err := New(Config{Name: "copy", Agents: roles, Mode: ModeSequential})
	require.NoError(t, err)
	assert.Empty(t, roles[0].Role)
}

func TestTeam_RunParallelMergeAll(t *testing.T) {
	a := core.NewMockAgent("A")
	a.AddResponse("task", "Result A")
	b := core.NewMockAgent("B")
	b.AddResponse("task", "Result B")

	tm, err := New(Config{
		Name:        "merge",
		Agents:      core.Members(a, b),
		Mode:        ModeParallel,
		Aggregation: aggregate.MergeAll,
	})
	require.NoError(t, err)

	result, err := tm.Run(context.Background(), "task")
	require.NoError(t, err)

	assert.Contains(t, result.FinalOutput, "[A]: Result A")
	assert.Contains(t, result.FinalOutput, "[B]: Result B")
	assert.Equal(t, 1, result.Rounds)
}

func TestTeam_Accessors(t *testing.T) {
	tm, err := New(Config{
		Name:   "meta",
		Agents: core.Members(core.NewMockAgent("a")),
		Mode:   ModeDebate,
	})
	require.NoError(t, err)
	assert.Equal(t, "meta", tm.Name())
	assert.Equal(t, ModeDebate, tm.Mode())
}
