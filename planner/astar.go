package planner

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/evacsim/graphbuild"
)

// AStar returns the node-id sequence from start to goal inclusive, or nil
// if no path exists.
//
// Contract:
//   - ErrNilProjected / ErrEmptyStart signal genuine programmer error
//     (nil projection, empty start id) distinct from "no path"; both are
//     checked first.
//   - start == goal then returns []string{start} without searching p.
//   - an empty p, or a start absent from p.Adjacency (when start != goal),
//     returns (nil, nil) — not an error.
//
// Expanded nodes track best-known g; a candidate replaces it only on a
// strict improvement. The open set is ordered by f-score alone, so the
// order among equal f-scores follows the heap's internal layout, not
// insertion order; determinism across repeated calls with identical input
// is guaranteed by the deterministic heap operations, but no ordering
// guarantee is made relative to other planner invocations.
func AStar(p *graphbuild.Projected, posMap graphbuild.PositionMap, start, goal string, opts ...Option) ([]string, error) {
	if start == "" {
		return nil, ErrEmptyStart
	}
	if p == nil {
		return nil, ErrNilProjected
	}
	if start == goal {
		return []string{start}, nil
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, ok := p.Adjacency[start]; !ok {
		return nil, nil
	}

	r := &runner{
		p:      p,
		pos:    posMap,
		goal:   goal,
		gScore: map[string]float64{start: 0},
		prev:   map[string]string{},
		open:   make(nodePQ, 0, len(p.Adjacency)),
		maxExp: cfg.MaxExpansions,
	}
	heap.Init(&r.open)
	heap.Push(&r.open, &nodeItem{id: start, f: r.heuristic(start)})

	found := r.run()
	if !found {
		return nil, nil
	}

	return r.reconstruct(start, goal), nil
}

// runner holds per-invocation A* state: open set, best-known g-scores, and
// predecessor links for path reconstruction.
type runner struct {
	p      *graphbuild.Projected
	pos    graphbuild.PositionMap
	goal   string
	gScore map[string]float64
	prev   map[string]string
	open   nodePQ
	maxExp int
}

// heuristic returns the 3D Euclidean distance from id to the goal. Missing
// positions are treated as the origin, which keeps the heuristic
// well-defined; graphbuild.BuildPositionMap places SUPER_EXIT at the origin
// too, since it has no coordinates of its own.
func (r *runner) heuristic(id string) float64 {
	a := r.pos[id]
	b := r.pos[r.goal]
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// run executes the main A* loop, returning true once the goal is popped
// from the open set.
func (r *runner) run() bool {
	expansions := 0
	for r.open.Len() > 0 {
		if r.maxExp > 0 && expansions >= r.maxExp {
			return false
		}
		item := heap.Pop(&r.open).(*nodeItem)
		expansions++

		if item.id == r.goal {
			return true
		}

		g := r.gScore[item.id]
		for _, nb := range r.p.Adjacency[item.id] {
			tentative := g + nb.Cost
			if best, ok := r.gScore[nb.To]; !ok || tentative < best {
				r.gScore[nb.To] = tentative
				r.prev[nb.To] = item.id
				heap.Push(&r.open, &nodeItem{id: nb.To, f: tentative + r.heuristic(nb.To)})
			}
		}
	}

	return false
}

// reconstruct walks prev backwards from goal to start.
func (r *runner) reconstruct(start, goal string) []string {
	path := []string{goal}
	cur := goal
	for cur != start {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
