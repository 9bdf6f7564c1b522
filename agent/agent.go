package agent

// New constructs an Agent with a cloned copy of path so the caller's slice
// (which may be shared by every agent spawned in the same room) can never
// be mutated through this agent's later reroutes.
func New(id int, path []string, goalID string, speedMPS float64) *Agent {
	a := &Agent{
		ID:       id,
		Path:     clonePath(path),
		GoalID:   goalID,
		SpeedMPS: speedMPS,
		Phase:    PhaseNode,
	}
	if len(a.Path) >= 2 {
		a.AssignedExit = a.Path[len(a.Path)-2]
	} else if len(a.Path) == 1 {
		a.AssignedExit = a.Path[0]
	}

	return a
}

func clonePath(path []string) []string {
	if path == nil {
		return nil
	}
	cp := make([]string, len(path))
	copy(cp, path)

	return cp
}

// ClampPosIdx forces PosIdx into [0, len(Path)-1], the recovery behavior
// required for malformed external mutation (spec §7). A no-op on an empty
// path.
func (a *Agent) ClampPosIdx() {
	if len(a.Path) == 0 {
		return
	}
	if a.PosIdx < 0 {
		a.PosIdx = 0
	}
	if a.PosIdx > len(a.Path)-1 {
		a.PosIdx = len(a.Path) - 1
	}
}

// CurrentNode returns the node at PosIdx, clamping first. Returns "" for
// an agent with an empty path.
func (a *Agent) CurrentNode() string {
	if len(a.Path) == 0 {
		return ""
	}
	a.ClampPosIdx()

	return a.Path[a.PosIdx]
}

// AtFinalNode reports whether PosIdx already sits on the last path node.
func (a *Agent) AtFinalNode() bool {
	return len(a.Path) > 0 && a.PosIdx == len(a.Path)-1
}

// HasNextEdge reports whether the agent has a node to advance toward.
func (a *Agent) HasNextEdge() bool {
	return len(a.Path) > 0 && a.PosIdx < len(a.Path)-1
}

// EnterEdge transitions PhaseNode -> PhaseEdge toward Path[PosIdx+1],
// setting the travel-time budget computed by the caller (engine owns the
// congestion-aware speed calculation).
func (a *Agent) EnterEdge(travelTime float64) {
	a.Phase = PhaseEdge
	a.EdgeTotalTime = travelTime
	a.EdgeTimeLeft = travelTime
}

// AdvanceEdge subtracts dt from EdgeTimeLeft. If the edge is now complete,
// it transitions to PhaseNode, increments PosIdx, stamps LastMoveTime, and
// reports true.
func (a *Agent) AdvanceEdge(dt, t float64) (arrived bool) {
	a.EdgeTimeLeft -= dt
	if a.EdgeTimeLeft > 0 {
		return false
	}
	a.Phase = PhaseNode
	a.EdgeTimeLeft = 0
	a.PosIdx++
	a.LastMoveTime = t

	return true
}

// Complete marks the agent done and stamps FinishTime.
func (a *Agent) Complete(t float64) {
	a.Done = true
	a.FinishTime = t
}

// AdoptPlan replaces the agent's remaining plan with newPath (already
// guaranteed by the caller to start at the agent's current node),
// resetting motion state to PhaseNode per the reroute adoption contract.
// newPath is cloned so no caller-held slice can alias the agent's Path.
func (a *Agent) AdoptPlan(newPath []string, t float64) {
	a.Path = clonePath(newPath)
	a.PosIdx = 0
	a.Phase = PhaseNode
	a.EdgeTimeLeft = 0
	a.EdgeTotalTime = 0
	a.LastMoveTime = t
}
