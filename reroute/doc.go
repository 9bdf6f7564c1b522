// Package reroute implements the per-tick rerouting controller: for every
// node holding waiting agents, decide whether each agent's plan should be
// recomputed, and apply the planner's answer with the documented adoption
// semantics (attempt counting, suffix-based history, state reset).
package reroute
