// Package building defines the in-memory representation of an evacuation
// building: Nodes, Edges, floors, and the synthetic SUPER_EXIT goal that
// every real exit connects to.
//
// Node and Edge carry mutable state (open/closed) and, for edges, a mutable
// risk value. Both are exposed only through narrowly scoped mutators so
// that the rest of the module never reaches into a map by field name, the
// way the source document did.
//
// A Building is read-mostly: after construction (FromDocument), only the
// hazard package mutates it, and only between simulation ticks. An
// sync.RWMutex guards node/edge state so that a Clone taken for a
// Monte-Carlo replica never races with hazard mutation of the original.
package building
