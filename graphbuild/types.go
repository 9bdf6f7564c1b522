package graphbuild

import "github.com/katalvlaran/evacsim/building"

// DirectedPair identifies one direction of travel between two nodes.
type DirectedPair struct {
	From, To string
}

// CongestionSnapshot maps a directed pair to the observed occupancy on
// that directed edge. A missing key means zero occupancy.
type CongestionSnapshot map[DirectedPair]float64

// Occupancy returns the occupancy recorded for from->to, or 0 if absent.
func (c CongestionSnapshot) Occupancy(from, to string) float64 {
	return c[DirectedPair{From: from, To: to}]
}

// Neighbor is one weighted out-edge in a Projected adjacency list.
type Neighbor struct {
	To   string
	Cost float64
}

// Projected is the output of Project: a directed adjacency list plus a
// node lookup, ready for planner.AStar.
type Projected struct {
	Adjacency map[string][]Neighbor
	Nodes     map[string]*building.Node
}
