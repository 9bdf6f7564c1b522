// Package dynamics derives and holds the per-node service rate used by the
// tick engine's admission step.
//
// A node's service_rate_ps is fixed at construction from its type and
// width: width * base-rate-per-meter for the four recognized bottleneck
// types (hall, door, exit, stair), or effectively infinite for any other
// type. The rate is later mutated only by hazard.ScaleServiceRate.
package dynamics
