// Package engine orchestrates the discrete-time tick loop: hazard hook,
// edge advance, arrival completion, waiter/occupancy snapshots, rerouting,
// service admission, and edge entry, in the fixed order the simulation
// correctness depends on.
package engine
