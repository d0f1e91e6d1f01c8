package core

import (
	"context"

	json "github.com/goccy/go-json"
)

// Agent defines the single capability the coordination engine consumes:
// submit input text, receive a response with text, tool calls and token
// usage. Identity is the agent's name, which must be unique within a team.
//
// Implementations must:
//   - Respect context cancellation for cooperative shutdown
//   - Return either a non-nil response or an error, never both nil
//   - Be safe for invocation from a single goroutine at a time
type Agent interface {
	// Name returns the agent's identifier within a team.
	Name() string

	// Run submits input and blocks until the agent produces a response or
	// fails. The context carries deadline and cancellation signals.
	Run(ctx context.Context, input string) (*AgentResponse, error)
}

// ToolCall represents a function call surfaced by an agent's underlying
// model. Unified across vendors so coordination logic does not need
// per-provider branching.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"` // "function"
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction describes the concrete function target of a tool call.
type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"` // JSON string of arguments
}

// TokenUsage captures token usage statistics for a single invocation or an
// aggregate over many.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage record into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// AgentResponse is the normalized result of one agent invocation.
type AgentResponse struct {
	AgentName string     `json:"agent_name"`
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Usage     TokenUsage `json:"usage"`
}

// RoleMember is the role assigned to plain agents that carry no explicit
// team-scoped role.
const RoleMember = "member"

// AgentRole annotates an Agent with a team-scoped role. The zero value of
// Role is normalized to RoleMember by team construction.
type AgentRole struct {
	Agent
	Role        string
	Description string
	CanDelegate bool
}

// Member wraps a plain agent with the default member role.
func Member(a Agent) AgentRole {
	return AgentRole{Agent: a, Role: RoleMember}
}

// Members wraps plain agents with the default member role, preserving order.
func Members(agents ...Agent) []AgentRole {
	roles := make([]AgentRole, 0, len(agents))
	for _, a := range agents {
		roles = append(roles, Member(a))
	}
	return roles
}
