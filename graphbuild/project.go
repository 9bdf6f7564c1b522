package graphbuild

import (
	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/config"
)

// Project builds a directed, weighted adjacency view of b for planner.AStar.
//
// An edge is skipped entirely when its own State is not Open, or when
// either endpoint's State is not Open (a closed node takes every incident
// edge with it, even an edge that is itself still marked open). A
// bidirectional edge emits both directions; when occ has no entry for the
// reverse pair, the forward pair's occupancy is reused verbatim — this
// over-penalizes genuine counter-flow but matches the source behavior and
// is preserved deliberately (see DESIGN.md).
func Project(b *building.Building, cfg config.PlannerConfig, occ CongestionSnapshot) *Projected {
	nodes := b.Nodes()
	p := &Projected{
		Adjacency: make(map[string][]Neighbor, len(nodes)),
		Nodes:     nodes,
	}
	if occ == nil {
		occ = CongestionSnapshot{}
	}

	for _, e := range b.Edges() {
		if !e.Open() {
			continue
		}
		na, ok := nodes[e.A]
		if !ok || na.State != building.Open {
			continue
		}
		nb, ok := nodes[e.B]
		if !ok || nb.State != building.Open {
			continue
		}

		costAB := edgeCost(cfg, e, occ.Occupancy(e.A, e.B))
		p.Adjacency[e.A] = append(p.Adjacency[e.A], Neighbor{To: e.B, Cost: costAB})

		if e.Directionality == building.Bidirectional {
			rev, hasRev := occ[DirectedPair{From: e.B, To: e.A}]
			if !hasRev {
				rev = occ.Occupancy(e.A, e.B)
			}
			costBA := edgeCost(cfg, e, rev)
			p.Adjacency[e.B] = append(p.Adjacency[e.B], Neighbor{To: e.A, Cost: costBA})
		}
	}

	return p
}

// edgeCost blends length, congestion, and risk per cfg's weight triple.
func edgeCost(cfg config.PlannerConfig, e *building.Edge, occupancy float64) float64 {
	cLen := cfg.LengthWeight * e.Length * e.WeightFactor
	cCong := cfg.CongestionWeight * max0(occupancy)
	cRisk := cfg.RiskWeight * e.Risk

	return cLen + cCong + cRisk
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

// PositionMap maps a node id to its 3D planning position: (x, y,
// floor-index-as-z). One floor unit is the z-axis unit, per the spec's
// heuristic convention.
type PositionMap map[string][3]float64

// BuildPositionMap derives a PositionMap from every node in b. Rebuilt on
// every call by design (see DESIGN.md open question on caching); callers
// that replan frequently may cache the result themselves and invalidate
// only when the node set changes.
func BuildPositionMap(b *building.Building) PositionMap {
	nodes := b.Nodes()
	pm := make(PositionMap, len(nodes))
	for id, n := range nodes {
		pm[id] = [3]float64{n.X, n.Y, float64(n.FloorIndex)}
	}

	return pm
}
