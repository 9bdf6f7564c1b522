// Package planner implements A* shortest-path search over a
// graphbuild.Projected adjacency view, using a 3D Euclidean heuristic
// (x, y, floor-index-as-z).
//
// Mixing a length_weight other than 1 into edge costs while keeping the
// heuristic in raw meters makes the search non-optimal when
// length_weight < 1; this is acceptable because the planner is invoked
// online for reactive rerouting, not for an optimality guarantee. Ties and
// inadmissibility never break correctness here — only path quality.
//
// Complexity: O((V+E) log V), following the same lazy-decrease-key
// min-heap approach as the dijkstra package this is grounded on.
package planner
