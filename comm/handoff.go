package comm

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Handoff represents an explicit agent-to-agent transfer carrying the
// sending agent's output and optional instructions for the receiver.
type Handoff struct {
	FromAgent    string `json:"from_agent"`
	ToAgent      string `json:"to_agent"`
	Output       string `json:"output"`
	Instructions string `json:"instructions,omitempty"`
}

// Validate checks that a Handoff has all required fields.
func (h *Handoff) Validate() error {
	if h.FromAgent == "" {
		return errors.New("from_agent is required")
	}
	if h.ToAgent == "" {
		return errors.New("to_agent is required")
	}
	return nil
}

// Format renders the textual input delivered to the receiving agent.
func (h *Handoff) Format() string {
	if h.Instructions != "" {
		return fmt.Sprintf("Handoff from %s:\n\n%s\n\nInstructions: %s", h.FromAgent, h.Output, h.Instructions)
	}
	return fmt.Sprintf("Handoff from %s:\n\n%s", h.FromAgent, h.Output)
}

// MarshalJSON implements json.Marshaler.
func (h Handoff) MarshalJSON() ([]byte, error) {
	type alias Handoff
	return json.Marshal(alias(h))
}
