package engine

import (
	"errors"

	"github.com/katalvlaran/evacsim/agent"
	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/config"
	"github.com/katalvlaran/evacsim/dynamics"
	"github.com/katalvlaran/evacsim/graphbuild"
	"github.com/katalvlaran/evacsim/randstream"
	"github.com/katalvlaran/evacsim/reroute"
)

// Sentinel errors for the engine package.
var (
	// ErrMissingEdgeLength signals that edge entry could not resolve a
	// directed edge length; fatal, since traversal physics cannot proceed.
	ErrMissingEdgeLength = errors.New("engine: missing edge length for directed pair")

	// ErrInvalidAgentIndex signals an out-of-range lookup via AgentByIndex.
	ErrInvalidAgentIndex = errors.New("engine: invalid agent index")
)

// HazardHook is the external mutator invoked once per tick, before any
// other sub-step runs. May close nodes, raise risk, or scale service
// rates; a nil hook is a no-op.
type HazardHook func(b *building.Building, table *dynamics.Table, tick int)

// Result is the engine's output after a run: completion times in
// completion order, and a per-node series of waiter-count samples.
type Result struct {
	CompletionTimes []float64
	CongestionLog   map[string][]int
}

// Engine owns the building, node-dynamics table, agent population, and
// pseudorandom stream for the duration of a run. It is the sole mutator of
// all four during Step; external collaborators only observe between runs.
type Engine struct {
	building *building.Building
	table    *dynamics.Table
	agents   []*agent.Agent

	pcfg   config.PlannerConfig
	policy reroute.Policy
	params config.EngineParams
	rng    *randstream.Stream
	hook   HazardHook

	edgeLength map[graphbuild.DirectedPair]float64

	t        float64
	tick     int
	result   Result
}

// New constructs an Engine over b and agents, deriving the node-dynamics
// table and the directed edge-length map once at construction time.
func New(b *building.Building, agents []*agent.Agent, pcfg config.PlannerConfig,
	policy reroute.Policy, params config.EngineParams, hook HazardHook) *Engine {
	e := &Engine{
		building:   b,
		table:      dynamics.NewTable(b),
		agents:     agents,
		pcfg:       pcfg,
		policy:     policy,
		params:     params,
		rng:        randstream.New(params.RNGSeed),
		hook:       hook,
		edgeLength: buildEdgeLengthMap(b),
		result:     Result{CongestionLog: make(map[string][]int)},
	}

	return e
}

func buildEdgeLengthMap(b *building.Building) map[graphbuild.DirectedPair]float64 {
	m := make(map[graphbuild.DirectedPair]float64)
	for _, e := range b.Edges() {
		m[graphbuild.DirectedPair{From: e.A, To: e.B}] = e.Length
		if e.Directionality == building.Bidirectional {
			m[graphbuild.DirectedPair{From: e.B, To: e.A}] = e.Length
		}
	}

	return m
}

// AgentByIndex returns the agent at idx, or ErrInvalidAgentIndex if out of
// range.
func (e *Engine) AgentByIndex(idx int) (*agent.Agent, error) {
	if idx < 0 || idx >= len(e.agents) {
		return nil, ErrInvalidAgentIndex
	}

	return e.agents[idx], nil
}

// Building returns the engine's building, for callers that need to apply a
// hazard mutation outside the hook (e.g. scenario setup before Run).
func (e *Engine) Building() *building.Building { return e.building }

// Table returns the engine's node-dynamics table.
func (e *Engine) Table() *dynamics.Table { return e.table }
