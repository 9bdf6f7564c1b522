package dynamics

import (
	"errors"
	"math"

	"github.com/katalvlaran/evacsim/building"
)

// ErrNodeNotFound indicates ScaleServiceRate was called with an id absent
// from the table.
var ErrNodeNotFound = errors.New("dynamics: node not found")

// baseRatePerMeter maps a recognized NodeType to its base service rate in
// agents per second per meter of width.
var baseRatePerMeter = map[building.NodeType]float64{
	building.Hall:  1.5,
	building.Door:  1.2,
	building.Exit:  2.0,
	building.Stair: 0.8,
}

// Entry is a single node's cached dynamics.
type Entry struct {
	ServiceRatePS float64
	Type          building.NodeType
	Width         float64
}

// Table maps node ID to its Entry.
type Table struct {
	rates map[string]*Entry
}

// NewTable derives a Table from every node in b. Unrecognized node types
// get math.Inf(1) as their service rate: the admission step's floor(q) /
// Bernoulli math treats that as "never a bottleneck", matching the
// very-large-finite sentinel the source used.
func NewTable(b *building.Building) *Table {
	nodes := b.Nodes()
	t := &Table{rates: make(map[string]*Entry, len(nodes))}
	for id, n := range nodes {
		rate, ok := baseRatePerMeter[n.Type]
		var s float64
		if ok {
			s = n.Width * rate
		} else {
			s = math.Inf(1)
		}
		t.rates[id] = &Entry{ServiceRatePS: s, Type: n.Type, Width: n.Width}
	}

	return t
}

// Rate returns the current service_rate_ps for id, or 0 and false if id is
// not present in the table.
func (t *Table) Rate(id string) (float64, bool) {
	e, ok := t.rates[id]
	if !ok {
		return 0, false
	}

	return e.ServiceRatePS, true
}

// Scale multiplies the node's service_rate_ps by factor. Returns
// ErrNodeNotFound for an unknown id.
func (t *Table) Scale(id string, factor float64) error {
	e, ok := t.rates[id]
	if !ok {
		return ErrNodeNotFound
	}
	e.ServiceRatePS *= factor

	return nil
}

// Clone returns a deep copy of the table, independent of the source.
func (t *Table) Clone() *Table {
	clone := &Table{rates: make(map[string]*Entry, len(t.rates))}
	for id, e := range t.rates {
		cp := *e
		clone.rates[id] = &cp
	}

	return clone
}
