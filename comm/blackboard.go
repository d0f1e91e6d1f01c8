package comm

import "sync"

// Blackboard is a volatile shared workspace storing values in a process-local
// map. It is safe for concurrent access and scoped to a single team run.
type Blackboard struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewBlackboard constructs an empty blackboard.
func NewBlackboard() *Blackboard {
	return &Blackboard{entries: make(map[string]any)}
}

// Set writes a value under key, replacing any previous value.
func (b *Blackboard) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
}

// Get returns the value stored under key and whether it exists.
func (b *Blackboard) Get(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.entries[key]
	return v, ok
}

// Delete removes the value under key if present.
func (b *Blackboard) Delete(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
}

// Keys returns all currently stored keys in unspecified order.
func (b *Blackboard) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a shallow copy of all entries to prevent external
// mutation of internal state.
func (b *Blackboard) Snapshot() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]any, len(b.entries))
	for k, v := range b.entries {
		out[k] = v
	}
	return out
}
