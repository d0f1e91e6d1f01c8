package comm

import (
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Message is a single communication unit between agents. An empty To field
// marks a broadcast visible to every agent on the team.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageBus is an append-only log of inter-agent messages scoped to one
// team run. Messages are never removed or reordered.
type MessageBus struct {
	mu       sync.RWMutex
	messages []Message
}

// NewMessageBus constructs an empty message bus.
func NewMessageBus() *MessageBus {
	return &MessageBus{}
}

// Send appends a message to the log and returns the stored record.
func (mb *MessageBus) Send(from, to, content string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.messages = append(mb.messages, msg)
	return msg
}

// Messages returns a copy of the full log in append order.
func (mb *MessageBus) Messages() []Message {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	out := make([]Message, len(mb.messages))
	copy(out, mb.messages)
	return out
}

// MessagesFor returns messages addressed to the named agent, including
// broadcasts, in append order.
func (mb *MessageBus) MessagesFor(agentName string) []Message {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	var out []Message
	for _, m := range mb.messages {
		if m.To == agentName || m.To == "" {
			out = append(out, m)
		}
	}
	return out
}

// ExportJSON renders the full log as JSON, useful for audit trails and
// post-run inspection.
func (mb *MessageBus) ExportJSON() ([]byte, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	return json.Marshal(mb.messages)
}
