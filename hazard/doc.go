// Package hazard implements the three mutator operations a hazard hook (or
// an external scenario driver) uses to perturb a building between ticks:
// closing a node, setting a node on fire, and scaling a node's service
// rate. All three are meant to be applied between ticks, never mid-tick.
package hazard
