// Package team implements the multi-agent coordination engine. A Team wraps
// a set of agents and runs them under one coordination policy:
//
//   - Sequential: a strict pipeline, each agent consuming its predecessor's output
//   - Parallel: concurrent fan-out over identical input with pluggable aggregation
//   - Debate: multi-round argumentation with convergence detection and an optional judge
//   - Supervisor: coordinator-led delegation through text-embedded directives
//   - Custom: a fully caller-supplied coordination function
//
// Failure policy is deliberately asymmetric per mode: Sequential and Debate
// fail fast on the first agent error, Parallel degrades gracefully by
// excluding failed or timed-out agents from aggregation, and Supervisor
// converts worker failures into feedback text for the coordinator.
//
// Lifecycle hooks fire around rounds and agent calls; when a tracer is
// configured the hooks are transparently wrapped so every round and agent
// call is covered by a correctly nested span without masking any error.
package team
