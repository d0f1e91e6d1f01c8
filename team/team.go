package team

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
	"github.com/hupe1980/agentteam/logging"
	"github.com/hupe1980/agentteam/tracing"
)

// CoordinationMode selects the policy governing how a team's agents are
// invoked and merged into one result. The set of modes is closed; dispatch
// happens through a single exhaustive switch.
type CoordinationMode string

const (
	// ModeSequential runs agents as a pipeline, each consuming its
	// predecessor's output.
	ModeSequential CoordinationMode = "sequential"
	// ModeParallel fans identical input out to all agents concurrently and
	// aggregates the surviving responses.
	ModeParallel CoordinationMode = "parallel"
	// ModeDebate runs multiple argumentation rounds until the agents
	// converge or the round budget is exhausted.
	ModeDebate CoordinationMode = "debate"
	// ModeSupervisor has one coordinator delegate work to named workers via
	// text-embedded directives.
	ModeSupervisor CoordinationMode = "supervisor"
	// ModeCustom delegates coordination entirely to a caller-supplied function.
	ModeCustom CoordinationMode = "custom"
)

// DefaultMaxRounds bounds multi-round modes when no explicit budget is set.
const DefaultMaxRounds = 10

// CoordinationFunc is a caller-supplied strategy for ModeCustom. The engine
// performs no implicit looping; the function owns round and result
// bookkeeping through the TeamContext and its returned TeamResult is passed
// through verbatim.
type CoordinationFunc func(ctx context.Context, agents []core.AgentRole, input string, tc *TeamContext) (*core.TeamResult, error)

// Configuration errors, returned synchronously by New before any agent runs.
var (
	// ErrNoAgents is returned when a team is configured without agents.
	ErrNoAgents = errors.New("team requires at least one agent")
	// ErrNoCoordinationFn is returned when ModeCustom lacks a coordination function.
	ErrNoCoordinationFn = errors.New("custom coordination mode requires a coordination function")
)

// Config describes a team. Mode selects which of the mode-specific fields
// apply; fields for other modes are ignored.
type Config struct {
	// Name identifies the team in logs and traces.
	Name string

	// Agents participate in the configured order. Wrap plain agents with
	// core.Members; an empty Role is normalized to core.RoleMember.
	Agents []core.AgentRole

	// Mode selects the coordination policy.
	Mode CoordinationMode

	// MaxRounds bounds multi-round modes. Defaults to DefaultMaxRounds.
	MaxRounds int

	// Hooks receive lifecycle callbacks. Optional.
	Hooks *Hooks

	// Tracer instruments the run with nested spans. Optional.
	Tracer tracing.Tracer

	// Logger receives structured engine logs. Defaults to a no-op logger.
	Logger logging.Logger

	// Aggregation selects how parallel results combine. Defaults to
	// aggregate.MergeAll. Parallel mode only.
	Aggregation aggregate.Strategy

	// Reducer combines parallel results under aggregate.Custom.
	Reducer aggregate.Reducer

	// AgentTimeout caps how long the parallel fan-out waits per agent. The
	// in-flight call is not cancelled when the timeout fires; only the wait
	// stops. Zero disables the timeout.
	AgentTimeout time.Duration

	// MaxConcurrent bounds simultaneous in-flight parallel calls.
	// Zero means unlimited.
	MaxConcurrent int

	// Rounds overrides MaxRounds for debate mode. Zero falls back to MaxRounds.
	Rounds int

	// Judge, if set, settles a debate that exhausts its rounds without
	// convergence. The judge is invoked exactly once and is not subject to
	// convergence testing.
	Judge core.Agent

	// Supervisor explicitly names the coordinator. When nil the first agent
	// in Agents coordinates and the rest are workers.
	Supervisor core.Agent

	// CallLimit bounds delegated worker invocations per supervisor run.
	// Exceeding it converts further delegations into feedback text.
	// Zero means unlimited.
	CallLimit int

	// CoordinationFn implements ModeCustom.
	CoordinationFn CoordinationFunc
}

// Team coordinates a fixed set of agents under one coordination mode. Teams
// are safe for concurrent Run calls: every run gets its own bookkeeping.
type Team struct {
	name      string
	agents    []core.AgentRole
	mode      CoordinationMode
	maxRounds int
	hooks     *Hooks
	tracer    tracing.Tracer
	logger    logging.Logger
	cfg       Config
}

// New validates the configuration and builds a Team. All configuration
// errors surface here, before any agent can run.
func New(cfg Config) (*Team, error) {
	if len(cfg.Agents) == 0 {
		return nil, ErrNoAgents
	}

	switch cfg.Mode {
	case ModeSequential, ModeParallel, ModeDebate, ModeSupervisor:
	case ModeCustom:
		if cfg.CoordinationFn == nil {
			return nil, ErrNoCoordinationFn
		}
	default:
		return nil, fmt.Errorf("unknown coordination mode: %q", cfg.Mode)
	}

	if cfg.Mode == ModeParallel {
		switch cfg.Aggregation {
		case "", aggregate.FirstWins, aggregate.MajorityVote, aggregate.MergeAll:
		case aggregate.Custom:
			if cfg.Reducer == nil {
				return nil, fmt.Errorf("aggregation strategy %q requires a custom reducer function", aggregate.Custom)
			}
		default:
			return nil, fmt.Errorf("unknown aggregation strategy: %q", cfg.Aggregation)
		}
	}

	agents := make([]core.AgentRole, len(cfg.Agents))
	copy(agents, cfg.Agents)
	for i := range agents {
		if agents[i].Role == "" {
			agents[i].Role = core.RoleMember
		}
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Team{
		name:      cfg.Name,
		agents:    agents,
		mode:      cfg.Mode,
		maxRounds: maxRounds,
		hooks:     cfg.Hooks,
		tracer:    cfg.Tracer,
		logger:    logger,
		cfg:       cfg,
	}, nil
}

// Name returns the team's configured name.
func (t *Team) Name() string { return t.name }

// Mode returns the team's coordination mode.
func (t *Team) Mode() CoordinationMode { return t.mode }

// Run executes the team on the given input. Each call is independent and
// self-contained; communication primitives and trace bookkeeping are created
// fresh and discarded when the run ends. Cancellation is cooperative through
// ctx. The returned error is always the runner's original error: tracing
// never masks or transforms failures.
func (t *Team) Run(ctx context.Context, input string) (*core.TeamResult, error) {
	t.logger.Debug("team run started", "team", t.name, "mode", string(t.mode))

	hooks := t.hooks
	var th *traceHooks
	if t.tracer != nil {
		th = newTraceHooks(t.tracer, t.name, string(t.mode), input, t.hooks)
		hooks = th.hooks()
	}

	result, err := t.dispatch(ctx, hooks, input)

	if th != nil {
		th.finish(result, err)
	}
	if err != nil {
		t.logger.Error("team run failed", "team", t.name, "error", err.Error())
		return nil, err
	}

	t.logger.Info("team run completed",
		"team", t.name, "rounds", result.Rounds, "total_tokens", result.TotalUsage.TotalTokens)
	return result, nil
}

// dispatch is the single exhaustive switch over the coordination mode.
func (t *Team) dispatch(ctx context.Context, hooks *Hooks, input string) (*core.TeamResult, error) {
	switch t.mode {
	case ModeSequential:
		return t.runSequential(ctx, hooks, input)
	case ModeParallel:
		return t.runParallel(ctx, hooks, input)
	case ModeDebate:
		return t.runDebate(ctx, hooks, input)
	case ModeSupervisor:
		return t.runSupervisor(ctx, hooks, input)
	case ModeCustom:
		return t.runCustom(ctx, input)
	default:
		// Unreachable: New rejects unknown modes.
		return nil, fmt.Errorf("unknown coordination mode: %q", t.mode)
	}
}
