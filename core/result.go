package core

// TeamResult is the synthesized outcome of one coordinated team run.
//
// AgentResults contains only invocations whose output was actually used or
// counted under the active mode's failure policy — a failed or timed-out
// participant leaves no placeholder. TotalUsage sums the usage of exactly
// those invocations that ran and were counted.
type TeamResult struct {
	FinalOutput  string          `json:"final_output"`
	AgentResults []AgentResponse `json:"agent_results"`
	Rounds       int             `json:"rounds"`
	TotalUsage   TokenUsage      `json:"total_usage"`
}
