// Package comm provides run-scoped communication primitives for
// caller-supplied coordination strategies:
//
//   - Blackboard: a shared key/value workspace
//   - MessageBus: an append-only log of inter-agent messages
//   - Handoff: an explicit agent-to-agent transfer with formatted context
//
// Instances are created fresh for each team run and discarded afterwards;
// nothing in this package persists across runs or processes. All types are
// safe for concurrent use within a single run.
package comm
