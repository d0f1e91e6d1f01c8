// Package core provides the foundational domain types and interfaces used by
// AgentTeam. It defines the core abstractions for:
//
//   - Agents (opaque text-in / text-out capabilities, the engine's only boundary)
//   - AgentRole (team-scoped role annotations over plain agents)
//   - AgentResponse / TokenUsage (normalized invocation results and accounting)
//   - TeamResult (the synthesized outcome of one coordinated run)
//   - CallLimiter (per-run invocation budgets)
//
// The package intentionally keeps implementation concerns (coordination
// policies, aggregation, communication primitives) out of scope, exposing
// small interfaces so any agent implementation — model-backed, scripted or
// mock — can participate in a team.
package core
