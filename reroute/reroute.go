package reroute

import (
	"sort"

	"github.com/katalvlaran/evacsim/agent"
	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/config"
	"github.com/katalvlaran/evacsim/evacsimlog"
	"github.com/katalvlaran/evacsim/graphbuild"
	"github.com/katalvlaran/evacsim/planner"
)

// Apply evaluates the reroute decision for every waiting agent and invokes
// the planner where warranted, per spec.md §4.4.
//
// waiters maps node id -> indices into agents currently in PhaseNode,
// non-done, at that node. occ is the current directed edge-occupancy
// snapshot, forwarded unchanged into every planner invocation this tick.
//
// Node iteration order is sorted for determinism; within a node, agents
// are processed in the order their index appears in waiters[node], per
// spec.
func Apply(b *building.Building, agents []*agent.Agent, waiters map[string][]int,
	occ graphbuild.CongestionSnapshot, t float64, policy Policy, pcfg config.PlannerConfig) {
	if len(waiters) == 0 {
		return
	}

	nodes := make([]string, 0, len(waiters))
	for nid := range waiters {
		nodes = append(nodes, nid)
	}
	sort.Strings(nodes)

	for _, nid := range nodes {
		idxs := waiters[nid]
		currentCongestion := len(idxs)

		for _, idx := range idxs {
			a := agents[idx]
			if a.Done || a.GoalID == "" {
				continue
			}

			if hasClosedNodeAhead(a, b) {
				rerouteAgent(a, b, pcfg, occ, t, "closed-node-ahead")
				continue
			}

			if shouldReroute(a, t, policy, currentCongestion) {
				rerouteAgent(a, b, pcfg, occ, t, "policy")
			}
		}
	}
}

// hasClosedNodeAhead reports whether any node strictly after the agent's
// current position is closed.
func hasClosedNodeAhead(a *agent.Agent, b *building.Building) bool {
	if len(a.Path) == 0 {
		return false
	}
	a.ClampPosIdx()

	for _, nid := range a.Path[a.PosIdx+1:] {
		if st, ok := b.NodeState(nid); ok && st != building.Open {
			return true
		}
	}

	return false
}

// shouldReroute implements the policy branch: stuck-time or local
// congestion threshold.
func shouldReroute(a *agent.Agent, t float64, policy Policy, currentCongestion int) bool {
	stuck := t - a.LastMoveTime
	if stuck >= policy.MaxStuckTime {
		return true
	}

	return currentCongestion >= policy.CongestionThreshold
}

// rerouteAgent recomputes a's plan. Always increments RerouteAttempts; a
// non-productive invocation (unreachable goal) leaves the plan untouched.
func rerouteAgent(a *agent.Agent, b *building.Building, pcfg config.PlannerConfig,
	occ graphbuild.CongestionSnapshot, t float64, reason string) {
	a.ClampPosIdx()
	currentNode := a.Path[a.PosIdx]
	oldSuffix := append([]string(nil), a.Path[a.PosIdx:]...)

	a.RerouteAttempts++

	projected := graphbuild.Project(b, pcfg, occ)
	posMap := graphbuild.BuildPositionMap(b)

	newPath, err := planner.AStar(projected, posMap, currentNode, a.GoalID)
	if err != nil || len(newPath) == 0 {
		return
	}

	if newPath[0] != currentNode {
		newPath = append([]string{currentNode}, newPath...)
	}

	if !pathsEqual(newPath, oldSuffix) {
		a.RerouteHistory = append(a.RerouteHistory, agent.RerouteEvent{
			Time:    t,
			OldPath: oldSuffix,
			NewPath: append([]string(nil), newPath...),
		})
		evacsimlog.Reroute(a.ID, reason, oldSuffix, newPath)
	}

	a.AdoptPlan(newPath, t)
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
