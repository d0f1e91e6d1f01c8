package team

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentteam/core"
)

// runSequential executes agents as a strict pipeline: the first agent
// receives the original input, each subsequent agent receives the previous
// agent's response text. The first error stops the pipeline immediately.
func (t *Team) runSequential(ctx context.Context, hooks *Hooks, input string) (*core.TeamResult, error) {
	result := &core.TeamResult{Rounds: 1}

	hooks.roundStart(1)

	current := input
	for _, member := range t.agents {
		hooks.agentStart(1, member.Name(), current)

		resp, err := member.Run(ctx, current)
		if err != nil {
			hooks.onError(err)
			return nil, fmt.Errorf("sequential execution failed at agent %s: %w", member.Name(), err)
		}
		if resp == nil {
			err := fmt.Errorf("agent %q returned no response", member.Name())
			hooks.onError(err)
			return nil, err
		}

		hooks.agentEnd(1, member.Name(), *resp)
		result.AgentResults = append(result.AgentResults, *resp)
		result.TotalUsage.Add(resp.Usage)
		current = resp.Text
	}

	result.FinalOutput = current
	hooks.roundEnd(1, result.AgentResults)

	return result, nil
}
