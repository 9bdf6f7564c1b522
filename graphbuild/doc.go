// Package graphbuild projects a building.Building plus an optional
// edge-congestion snapshot into a weighted directed adjacency structure
// ready for planner.AStar.
//
// A closed node vanishes entirely from the projection, taking every
// incident edge with it even if that edge is itself marked open; a closed
// edge vanishes on its own. Surviving edges are costed by blending length,
// congestion, and risk per a config.PlannerConfig weight triple.
package graphbuild
