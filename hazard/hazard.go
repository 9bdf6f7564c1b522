package hazard

import (
	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/dynamics"
)

// RiskMode selects how SetFire combines a new risk value with an edge's
// existing risk.
type RiskMode int

const (
	// RiskMax sets edge.Risk = max(old, value).
	RiskMax RiskMode = iota
	// RiskAdd sets edge.Risk = old + value.
	RiskAdd
)

// FireOptions configures SetFire. Zero value is not directly usable;
// construct via DefaultFireOptions.
type FireOptions struct {
	RiskValue float64
	Hops      int
	Mode      RiskMode
}

// DefaultFireOptions matches the spec-documented defaults: risk 10, a
// 2-hop blast radius, "max" combination.
func DefaultFireOptions() FireOptions {
	return FireOptions{RiskValue: 10, Hops: 2, Mode: RiskMax}
}

// CloseNode sets a node's state to closed and closes every edge incident
// to it. Returns building.ErrNodeNotFound for an unknown id.
func CloseNode(b *building.Building, id string) error {
	if _, ok := b.Node(id); !ok {
		return building.ErrNodeNotFound
	}
	if err := b.SetNodeState(id, building.Closed); err != nil {
		return err
	}
	for _, e := range b.IncidentEdges(id) {
		if err := b.SetEdgeState(e.ID, building.Closed); err != nil {
			return err
		}
	}

	return nil
}

// SetFire closes id (and its incident edges, as CloseNode does), then
// raises the risk of every edge with at least one endpoint within opts.Hops
// of id. Hop distances are measured over the subgraph of edges that were
// open when SetFire was called, before id's incident edges were closed.
func SetFire(b *building.Building, id string, opts FireOptions) error {
	var dist map[string]int
	if opts.Hops > 0 {
		dist = hopDistances(b, id, opts.Hops)
	}
	if err := CloseNode(b, id); err != nil {
		return err
	}
	if opts.Hops <= 0 {
		return nil
	}

	for _, e := range b.Edges() {
		da, aok := dist[e.A]
		db, bok := dist[e.B]
		if !aok && !bok {
			continue
		}

		min := da
		if !aok || (bok && db < da) {
			min = db
		}
		if min > opts.Hops {
			continue
		}

		newRisk := combine(e.Risk, opts.RiskValue, opts.Mode)
		if err := b.SetEdgeRisk(e.ID, newRisk); err != nil {
			return err
		}
	}

	return nil
}

func combine(old, value float64, mode RiskMode) float64 {
	if mode == RiskAdd {
		return old + value
	}
	if value > old {
		return value
	}

	return old
}

// hopDistances runs a hop-limited BFS from id over the undirected subgraph
// of currently open edges, returning every reached node's distance up to
// and including maxHops.
func hopDistances(b *building.Building, id string, maxHops int) map[string]int {
	adj := make(map[string][]string)
	for _, e := range b.Edges() {
		if !e.Open() {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	dist := map[string]int{id: 0}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d >= maxHops {
			continue
		}
		for _, nb := range adj[cur] {
			if _, seen := dist[nb]; !seen {
				dist[nb] = d + 1
				queue = append(queue, nb)
			}
		}
	}

	return dist
}

// ScaleServiceRate multiplies id's service_rate_ps by factor. Returns
// dynamics.ErrNodeNotFound for an unknown id.
func ScaleServiceRate(t *dynamics.Table, id string, factor float64) error {
	return t.Scale(id, factor)
}
