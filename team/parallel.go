package team

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
)

// runParallel fans identical input out to all agents concurrently. Failures
// and timeouts are isolated per agent: they fire OnError and are excluded
// from the results, never aborting siblings. Surviving responses keep the
// configured agent order and feed the aggregation strategy. Parallel always
// runs exactly one round.
func (t *Team) runParallel(ctx context.Context, hooks *Hooks, input string) (*core.TeamResult, error) {
	hooks.roundStart(1)

	type outcome struct {
		resp *core.AgentResponse
		err  error
	}
	outcomes := make([]outcome, len(t.agents))

	var sem chan struct{}
	if t.cfg.MaxConcurrent > 0 {
		sem = make(chan struct{}, t.cfg.MaxConcurrent)
	}

	var wg sync.WaitGroup
	for i, member := range t.agents {
		hooks.agentStart(1, member.Name(), input)

		wg.Add(1)
		go func(idx int, a core.Agent) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			resp, err := runWithTimeout(ctx, a, input, t.cfg.AgentTimeout)
			outcomes[idx] = outcome{resp: resp, err: err}
		}(i, member.Agent)
	}
	wg.Wait()

	result := &core.TeamResult{Rounds: 1}
	for i, o := range outcomes {
		if o.err != nil {
			hooks.onError(o.err)
			t.logger.Warn("parallel agent excluded",
				"team", t.name, "agent", t.agents[i].Name(), "error", o.err.Error())
			continue
		}
		hooks.agentEnd(1, t.agents[i].Name(), *o.resp)
		result.AgentResults = append(result.AgentResults, *o.resp)
		result.TotalUsage.Add(o.resp.Usage)
	}

	output, err := aggregate.Aggregate(t.cfg.Aggregation, result.AgentResults, t.cfg.Reducer)
	if err != nil {
		return nil, err
	}
	result.FinalOutput = output

	hooks.roundEnd(1, result.AgentResults)

	return result, nil
}

// runWithTimeout races the agent call against a timer. When the timer fires
// only the wait stops; the in-flight call keeps running to completion in its
// goroutine and its result is discarded.
func runWithTimeout(ctx context.Context, a core.Agent, input string, timeout time.Duration) (*core.AgentResponse, error) {
	if timeout <= 0 {
		resp, err := a.Run(ctx, input)
		return checkResponse(a, resp, err)
	}

	type outcome struct {
		resp *core.AgentResponse
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		resp, err := a.Run(ctx, input)
		done <- outcome{resp: resp, err: err}
	}()

	select {
	case o := <-done:
		return checkResponse(a, o.resp, o.err)
	case <-time.After(timeout):
		return nil, fmt.Errorf("agent %q timed out after %dms", a.Name(), timeout.Milliseconds())
	}
}

func checkResponse(a core.Agent, resp *core.AgentResponse, err error) (*core.AgentResponse, error) {
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("agent %q returned no response", a.Name())
	}
	return resp, nil
}
