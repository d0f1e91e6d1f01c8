package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/agentteam/aggregate"
	"github.com/hupe1980/agentteam/core"
)

// debateTurn is one agent's contribution to one round.
type debateTurn struct {
	round int
	agent string
	text  string
}

// runDebate executes sequential argumentation rounds. Every agent sees the
// original input plus the chronological history of prior rounds. The round
// converges when all agents produce identical trimmed text; a configured
// judge settles an unconverged debate after the round budget is exhausted.
// Agent errors fail fast, unlike parallel mode. Cancellation between rounds
// returns the accumulated result without error.
func (t *Team) runDebate(ctx context.Context, hooks *Hooks, input string) (*core.TeamResult, error) {
	rounds := t.cfg.Rounds
	if rounds <= 0 {
		rounds = t.maxRounds
	}

	result := &core.TeamResult{}
	var history []debateTurn
	var lastRound []core.AgentResponse
	aborted := false

	for round := 1; round <= rounds; round++ {
		if ctx.Err() != nil {
			aborted = true
			break
		}

		hooks.roundStart(round)

		// All agents of a round argue against the same history snapshot;
		// same-round turns never leak into a peer's prompt.
		prompt := debatePrompt(input, history, round)

		current := make([]core.AgentResponse, 0, len(t.agents))
		for _, member := range t.agents {
			hooks.agentStart(round, member.Name(), prompt)

			resp, err := member.Run(ctx, prompt)
			if err != nil {
				hooks.onError(err)
				return nil, fmt.Errorf("debate round %d failed at agent %s: %w", round, member.Name(), err)
			}
			if resp == nil {
				err := fmt.Errorf("agent %q returned no response", member.Name())
				hooks.onError(err)
				return nil, err
			}

			hooks.agentEnd(round, member.Name(), *resp)
			result.AgentResults = append(result.AgentResults, *resp)
			result.TotalUsage.Add(resp.Usage)
			current = append(current, *resp)
			history = append(history, debateTurn{round: round, agent: member.Name(), text: resp.Text})
		}

		hooks.roundEnd(round, current)
		result.Rounds = round
		lastRound = current

		if text, ok := converged(current); ok {
			hooks.onConsensus(round, text)
			result.FinalOutput = text
			t.logger.Info("debate converged", "team", t.name, "round", round)
			return result, nil
		}
	}

	if t.cfg.Judge != nil && !aborted {
		prompt := judgePrompt(input, history)
		judge := t.cfg.Judge
		hooks.agentStart(result.Rounds, judge.Name(), prompt)

		resp, err := judge.Run(ctx, prompt)
		if err != nil {
			hooks.onError(err)
			return nil, fmt.Errorf("debate judge %s failed: %w", judge.Name(), err)
		}
		if resp == nil {
			err := fmt.Errorf("agent %q returned no response", judge.Name())
			hooks.onError(err)
			return nil, err
		}

		hooks.agentEnd(result.Rounds, judge.Name(), *resp)
		result.AgentResults = append(result.AgentResults, *resp)
		result.TotalUsage.Add(resp.Usage)
		result.FinalOutput = resp.Text
		return result, nil
	}

	result.FinalOutput = aggregate.Merge(lastRound)
	return result, nil
}

// converged reports whether all trimmed texts are identical. Debates with at
// most one participant are trivially converged.
func converged(responses []core.AgentResponse) (string, bool) {
	if len(responses) == 0 {
		return "", false
	}
	first := strings.TrimSpace(responses[0].Text)
	for _, r := range responses[1:] {
		if strings.TrimSpace(r.Text) != first {
			return "", false
		}
	}
	return first, true
}

func debatePrompt(input string, history []debateTurn, round int) string {
	var sb strings.Builder
	sb.WriteString(input)

	if round == 1 {
		sb.WriteString("\n\nProvide your initial argument.")
		return sb.String()
	}

	sb.WriteString("\n\nDebate so far:\n")
	for _, turn := range history {
		fmt.Fprintf(&sb, "[Round %d - %s]: %s\n", turn.round, turn.agent, turn.text)
	}
	fmt.Fprintf(&sb, "\nConsider the arguments above and provide your argument for round %d. If you fully agree with a position, restate it exactly.", round)
	return sb.String()
}

func judgePrompt(input string, history []debateTurn) string {
	var sb strings.Builder
	sb.WriteString(input)
	sb.WriteString("\n\nFull debate transcript:\n")
	for _, turn := range history {
		fmt.Fprintf(&sb, "[Round %d - %s]: %s\n", turn.round, turn.agent, turn.text)
	}
	sb.WriteString("\nAs the judge, weigh the arguments above and deliver the final answer.")
	return sb.String()
}
