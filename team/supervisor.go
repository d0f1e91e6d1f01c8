package team

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hupe1980/agentteam/core"
)

var (
	delegateDirective = regexp.MustCompile(`\[DELEGATE:\s*([^\]]+)\]\s*([^\n]*)`)
	// The answer capture stops at the next directive marker so a dead
	// trailing delegation never ends up in the final output.
	finalDirective = regexp.MustCompile(`(?s)\[FINAL\]\s*(.*?)\s*(?:\[DELEGATE:|\z)`)
)

// runSupervisor drives one coordinator over addressable workers. Every round
// the coordinator sees the original task plus, from round two, the previous
// round's worker results, and its response is scanned for directives:
//
//	[DELEGATE: worker] instructions   — invoke that worker once this round
//	[FINAL] answer                    — terminate with answer
//
// A [FINAL] directive takes precedence over any co-occurring delegations. A
// response without directives is itself the final answer. Worker failures —
// unknown names, invocation errors, an exhausted call limit — become
// feedback for the next round instead of failing the run.
func (t *Team) runSupervisor(ctx context.Context, hooks *Hooks, input string) (*core.TeamResult, error) {
	supervisor, workers := t.supervisorRoster()
	limiter := core.NewCallLimiter(t.cfg.CallLimit)

	result := &core.TeamResult{}
	feedback := ""
	lastText := ""

	for round := 1; round <= t.maxRounds; round++ {
		hooks.roundStart(round)

		prompt := t.supervisorPrompt(input, workers, feedback)
		hooks.agentStart(round, supervisor.Name(), prompt)

		resp, err := supervisor.Run(ctx, prompt)
		if err != nil {
			hooks.onError(err)
			return nil, fmt.Errorf("supervisor round %d failed: %w", round, err)
		}
		if resp == nil {
			err := fmt.Errorf("agent %q returned no response", supervisor.Name())
			hooks.onError(err)
			return nil, err
		}

		hooks.agentEnd(round, supervisor.Name(), *resp)
		result.AgentResults = append(result.AgentResults, *resp)
		result.TotalUsage.Add(resp.Usage)
		result.Rounds = round
		lastText = resp.Text
		roundResults := []core.AgentResponse{*resp}

		if m := finalDirective.FindStringSubmatch(resp.Text); m != nil {
			result.FinalOutput = strings.TrimSpace(m[1])
			hooks.roundEnd(round, roundResults)
			return result, nil
		}

		delegations := delegateDirective.FindAllStringSubmatch(resp.Text, -1)
		if len(delegations) == 0 {
			result.FinalOutput = resp.Text
			hooks.roundEnd(round, roundResults)
			return result, nil
		}

		var entries []string
		for _, d := range delegations {
			name := strings.TrimSpace(d[1])
			instructions := strings.TrimSpace(d[2])

			worker, ok := workers[name]
			if !ok {
				err := fmt.Errorf("delegation to unknown worker %q", name)
				hooks.onError(err)
				entries = append(entries, fmt.Sprintf("[%s]: delegation failed: no worker with this name is on the team", name))
				continue
			}

			if err := limiter.Increment(); err != nil {
				hooks.onError(err)
				entries = append(entries, fmt.Sprintf("[%s]: delegation skipped: %s", name, err.Error()))
				continue
			}

			hooks.agentStart(round, name, instructions)
			wresp, werr := worker.Run(ctx, instructions)
			if werr != nil {
				hooks.onError(werr)
				entries = append(entries, fmt.Sprintf("[%s]: failed: %s", name, werr.Error()))
				continue
			}
			if wresp == nil {
				err := fmt.Errorf("agent %q returned no response", name)
				hooks.onError(err)
				entries = append(entries, fmt.Sprintf("[%s]: failed: returned no response", name))
				continue
			}

			hooks.agentEnd(round, name, *wresp)
			result.AgentResults = append(result.AgentResults, *wresp)
			result.TotalUsage.Add(wresp.Usage)
			roundResults = append(roundResults, *wresp)
			entries = append(entries, fmt.Sprintf("[%s]: %s", name, wresp.Text))
		}

		hooks.roundEnd(round, roundResults)
		feedback = strings.Join(entries, "\n")
	}

	// Round budget exhausted without [FINAL]; the coordinator's latest text stands.
	result.FinalOutput = lastText
	return result, nil
}

// supervisorRoster resolves the coordinator and the workers addressable by
// name. An explicit Supervisor leaves every configured agent a worker;
// otherwise the first agent coordinates and the rest are workers.
func (t *Team) supervisorRoster() (core.Agent, map[string]core.AgentRole) {
	workers := make(map[string]core.AgentRole)

	if t.cfg.Supervisor != nil {
		for _, member := range t.agents {
			if member.Name() != t.cfg.Supervisor.Name() {
				workers[member.Name()] = member
			}
		}
		return t.cfg.Supervisor, workers
	}

	for _, member := range t.agents[1:] {
		workers[member.Name()] = member
	}
	return t.agents[0].Agent, workers
}

func (t *Team) supervisorPrompt(input string, workers map[string]core.AgentRole, feedback string) string {
	var sb strings.Builder
	sb.WriteString(input)

	sb.WriteString("\n\nYou coordinate the following workers:\n")
	for _, member := range t.agents {
		if _, ok := workers[member.Name()]; !ok {
			continue
		}
		if member.Description != "" {
			fmt.Fprintf(&sb, "- %s (%s): %s\n", member.Name(), member.Role, member.Description)
		} else {
			fmt.Fprintf(&sb, "- %s (%s)\n", member.Name(), member.Role)
		}
	}

	sb.WriteString("\nTo delegate work, respond with one line per assignment:\n")
	sb.WriteString("[DELEGATE: <worker>] <instructions>\n")
	sb.WriteString("When the task is complete, respond with:\n")
	sb.WriteString("[FINAL] <answer>\n")

	if feedback != "" {
		sb.WriteString("\nResults from your previous delegations:\n")
		sb.WriteString(feedback)
	}

	return sb.String()
}
