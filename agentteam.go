// Package agentteam provides a high-level façade over the team coordination
// engine enabling rapid construction of multi-agent systems. Most
// applications interact with this package by:
//  1. Implementing core.Agent for each participant (or using core.MockAgent in tests)
//  2. Building a team via one of the mode constructors (Sequential, Parallel,
//     Debate, Supervisor) or team.New for full control
//  3. Invoking Run with the task input
//
// The façade delegates coordination to the team package while keeping setup
// ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger and a
// tracer backend.
package agentteam

import (
	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
	"github.com/hupe1980/agentteam/logging"
	"github.com/hupe1980/agentteam/team"
	"github.com/hupe1980/agentteam/tracing"
)

// Options configures the optional knobs shared by all mode constructors.
type Options struct {
	// MaxRounds bounds multi-round modes. Defaults to team.DefaultMaxRounds.
	MaxRounds int

	// Hooks receive lifecycle callbacks during a run.
	Hooks *team.Hooks

	// Tracer instruments runs with nested spans.
	Tracer tracing.Tracer

	// Logger receives structured engine logs (defaults to NoOp if nil).
	Logger logging.Logger
}

func applyOptions(cfg *team.Config, optFns []func(o *Options)) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	cfg.MaxRounds = opts.MaxRounds
	cfg.Hooks = opts.Hooks
	cfg.Tracer = opts.Tracer
	cfg.Logger = opts.Logger
}

// Sequential builds a pipeline team: each agent consumes its predecessor's
// output in the given order.
func Sequential(name string, agents []core.Agent, optFns ...func(o *Options)) (*team.Team, error) {
	cfg := team.Config{
		Name:   name,
		Agents: core.Members(agents...),
		Mode:   team.ModeSequential,
	}
	applyOptions(&cfg, optFns)
	return team.New(cfg)
}

// Parallel builds a fan-out team combining results with the given strategy
// (aggregate.MergeAll when empty).
func Parallel(name string, agents []core.Agent, strategy aggregate.Strategy, optFns ...func(o *Options)) (*team.Team, error) {
	cfg := team.Config{
		Name:        name,
		Agents:      core.Members(agents...),
		Mode:        team.ModeParallel,
		Aggregation: strategy,
	}
	applyOptions(&cfg, optFns)
	return team.New(cfg)
}

// Debate builds a multi-round debate team. A nil judge falls back to merging
// the final round when the debate does not converge.
func Debate(name string, agents []core.Agent, judge core.Agent, optFns ...func(o *Options)) (*team.Team, error) {
	cfg := team.Config{
		Name:   name,
		Agents: core.Members(agents...),
		Mode:   team.ModeDebate,
		Judge:  judge,
	}
	applyOptions(&cfg, optFns)
	return team.New(cfg)
}

// Supervisor builds a delegation team with an explicit coordinator over the
// given workers.
func Supervisor(name string, supervisor core.Agent, workers []core.Agent, optFns ...func(o *Options)) (*team.Team, error) {
	cfg := team.Config{
		Name:       name,
		Agents:     core.Members(workers...),
		Mode:       team.ModeSupervisor,
		Supervisor: supervisor,
	}
	applyOptions(&cfg, optFns)
	return team.New(cfg)
}
