package core

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockAgent is a lightweight in-memory Agent useful for tests & examples.
// Responses can be scripted per input, queued in FIFO order, or left to a
// deterministic fallback. Every received input is recorded for inspection.
type MockAgent struct {
	name      string
	mu        sync.Mutex
	responses map[string]string
	queue     []string
	err       error
	delay     time.Duration
	usage     TokenUsage
	inputs    []string
}

// NewMockAgent constructs a MockAgent with a small fixed usage per call.
func NewMockAgent(name string) *MockAgent {
	return &MockAgent{
		name:      name,
		responses: make(map[string]string),
		usage:     TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
}

// Name implements Agent.
func (m *MockAgent) Name() string { return m.name }

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockAgent) AddResponse(input, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[input] = response
}

// QueueResponses appends responses returned in FIFO order regardless of input.
// Queued responses take precedence over per-input registrations.
func (m *MockAgent) QueueResponses(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

// FailWith makes every subsequent Run return err.
func (m *MockAgent) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetDelay makes Run block for d before responding.
func (m *MockAgent) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// SetUsage overrides the per-call token usage.
func (m *MockAgent) SetUsage(u TokenUsage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage = u
}

// Inputs returns a copy of all inputs received in call order.
func (m *MockAgent) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.inputs))
	copy(out, m.inputs)
	return out
}

// CallCount returns how many times Run has been invoked.
func (m *MockAgent) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// Run implements Agent.
func (m *MockAgent) Run(ctx context.Context, input string) (*AgentResponse, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	delay := m.delay
	err := m.err
	usage := m.usage
	var text string
	var ok bool
	if len(m.queue) > 0 {
		text, ok = m.queue[0], true
		m.queue = m.queue[1:]
	} else {
		text, ok = m.responses[input]
	}
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}

	if !ok {
		text = fmt.Sprintf("Mock response to: %s", input)
	}

	return &AgentResponse{AgentName: m.name, Text: text, Usage: usage}, nil
}
