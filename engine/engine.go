package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/evacsim/agent"
	"github.com/katalvlaran/evacsim/evacsimlog"
	"github.com/katalvlaran/evacsim/graphbuild"
	"github.com/katalvlaran/evacsim/reroute"
)

const minSpeedDenominator = 1e-6

// Run executes ticks until every agent is done or MaxSteps is reached,
// returning the accumulated Result.
func (e *Engine) Run() (Result, error) {
	for e.tick < e.params.MaxSteps {
		if e.allDone() {
			break
		}
		if err := e.Step(); err != nil {
			return e.result, err
		}
	}

	return e.result, nil
}

func (e *Engine) allDone() bool {
	return e.doneCount() == len(e.agents)
}

func (e *Engine) doneCount() int {
	n := 0
	for _, a := range e.agents {
		if a.Done {
			n++
		}
	}

	return n
}

// Step advances the simulation by one tick, running the nine ordered
// sub-steps of §4.5. Returns ErrMissingEdgeLength if edge entry cannot
// resolve a directed edge length.
func (e *Engine) Step() error {
	t := e.t
	evacsimlog.Tick(t, e.doneCount(), len(e.agents))

	e.runHazardHook()
	e.advanceEdgeAgents(t)
	e.completeArrivals(t)
	waiters := e.snapshotWaiters()
	e.recordCongestion(waiters)
	occ := e.snapshotOccupancy()
	reroute.Apply(e.building, e.agents, waiters, occ, t, e.policy, e.pcfg)
	movers := e.admitWaiters(waiters)
	if err := e.enterEdges(movers); err != nil {
		return err
	}

	e.tick++
	e.t += e.params.Dt

	return nil
}

func (e *Engine) runHazardHook() {
	if e.hook != nil {
		evacsimlog.Hazard(e.tick)
		e.hook(e.building, e.table, e.tick)
	}
}

// advanceEdgeAgents is tick sub-step 2.
func (e *Engine) advanceEdgeAgents(t float64) {
	for _, a := range e.agents {
		if a.Done || a.Phase != agent.PhaseEdge {
			continue
		}
		a.AdvanceEdge(e.params.Dt, t)
	}
}

// completeArrivals is tick sub-step 3.
func (e *Engine) completeArrivals(t float64) {
	for _, a := range e.agents {
		if a.Done {
			continue
		}
		if a.Phase == agent.PhaseNode && a.AtFinalNode() {
			a.Complete(t)
			e.result.CompletionTimes = append(e.result.CompletionTimes, t)
		}
	}
}

// snapshotWaiters is tick sub-step 4.
func (e *Engine) snapshotWaiters() map[string][]int {
	waiters := make(map[string][]int)
	for i, a := range e.agents {
		if a.Done || a.Phase != agent.PhaseNode || len(a.Path) == 0 {
			continue
		}
		a.ClampPosIdx()
		node := a.Path[a.PosIdx]
		waiters[node] = append(waiters[node], i)
	}

	return waiters
}

// recordCongestion is tick sub-step 5.
func (e *Engine) recordCongestion(waiters map[string][]int) {
	for node, idxs := range waiters {
		e.result.CongestionLog[node] = append(e.result.CongestionLog[node], len(idxs))
	}
}

// snapshotOccupancy is tick sub-step 6.
func (e *Engine) snapshotOccupancy() graphbuild.CongestionSnapshot {
	occ := make(graphbuild.CongestionSnapshot)
	for _, a := range e.agents {
		if a.Done || a.Phase != agent.PhaseEdge || !a.HasNextEdge() {
			continue
		}
		pair := graphbuild.DirectedPair{From: a.Path[a.PosIdx], To: a.Path[a.PosIdx+1]}
		occ[pair]++
	}

	return occ
}

// admitWaiters is tick sub-step 8: for each waiter node, compute how many
// leavers the node's service rate allows this tick and shuffle the
// candidate list for queue fairness.
func (e *Engine) admitWaiters(waiters map[string][]int) []int {
	nodes := make([]string, 0, len(waiters))
	for node := range waiters {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)

	var movers []int
	for _, node := range nodes {
		idxs := append([]int(nil), waiters[node]...)
		rate, ok := e.table.Rate(node)
		if !ok {
			rate = math.Inf(1)
		}

		n := maxLeavers(rate, e.params.Dt, len(idxs), e.rng.Bernoulli)
		e.rng.ShuffleInts(idxs)
		movers = append(movers, idxs[:n]...)
	}

	return movers
}

// maxLeavers computes floor(q) plus an extra Bernoulli(q-floor(q)) leaver,
// capped at waiterCount.
func maxLeavers(rate, dt float64, waiterCount int, bernoulli func(float64) bool) int {
	if math.IsInf(rate, 1) {
		return waiterCount
	}

	q := rate * dt
	n := int(math.Floor(q))
	frac := q - math.Floor(q)
	if bernoulli(frac) {
		n++
	}
	if n > waiterCount {
		n = waiterCount
	}
	if n < 0 {
		n = 0
	}

	return n
}

// enterEdges is tick sub-step 9.
func (e *Engine) enterEdges(movers []int) error {
	for _, idx := range movers {
		a := e.agents[idx]
		if a.Done || !a.HasNextEdge() {
			continue
		}

		cur := a.Path[a.PosIdx]
		nxt := a.Path[a.PosIdx+1]
		length, ok := e.edgeLength[graphbuild.DirectedPair{From: cur, To: nxt}]
		if !ok {
			evacsimlog.Error("tick %d: missing edge length %s->%s, aborting run", e.tick, cur, nxt)
			return fmt.Errorf("%w: %s->%s", ErrMissingEdgeLength, cur, nxt)
		}

		vEff := e.effectiveSpeed(a, cur, nxt)
		travelTime := length / math.Max(vEff, minSpeedDenominator)
		a.EnterEdge(travelTime)
	}

	return nil
}

// effectiveSpeed implements the congestion-speed model of §4.5: density is
// the count of other edge-phase agents on the same directed edge divided
// by the narrower of the two endpoint widths (floored at 0.5 m).
func (e *Engine) effectiveSpeed(a *agent.Agent, cur, nxt string) float64 {
	nEdge := 0
	for _, other := range e.agents {
		if other == a || other.Done {
			continue
		}
		if other.Phase != agent.PhaseEdge || !other.HasNextEdge() {
			continue
		}
		if other.Path[other.PosIdx] == cur && other.Path[other.PosIdx+1] == nxt {
			nEdge++
		}
	}

	wEff := 0.5
	if cn, ok := e.building.Node(cur); ok {
		if nn, ok2 := e.building.Node(nxt); ok2 {
			wEff = math.Max(0.5, math.Min(cn.Width, nn.Width))
		}
	}

	rho := float64(nEdge) / wEff
	alpha := math.Max(e.params.CongestionAlpha, 0)
	f := 1.0 / (1.0 + alpha*math.Max(0, rho-1))
	if f < e.params.MinSpeedFactor {
		f = e.params.MinSpeedFactor
	}

	return a.SpeedMPS * f
}
