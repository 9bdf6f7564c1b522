// Package agent defines the per-agent finite state machine: plan, motion
// phase, timing, and reroute history.
//
// An Agent alternates between PhaseNode (waiting at a node for service)
// and PhaseEdge (traversing toward path[PosIdx+1]). Every mutator that
// replaces Path clones it, so agents that were born sharing a plan value
// never alias each other's backing array after one of them reroutes.
package agent
