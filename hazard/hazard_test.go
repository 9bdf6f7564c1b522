package hazard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/dynamics"
	"github.com/katalvlaran/evacsim/hazard"
)

func chainBuilding(t *testing.T) *building.Building {
	t.Helper()
	doc := building.Document{
		Nodes: []building.NodeDoc{
			{ID: "ROOM", Type: building.Room},
			{ID: "DOOR", Type: building.Door},
			{ID: "HALL", Type: building.Hall},
			{ID: "EXIT", Type: building.Exit},
		},
		Edges: []building.EdgeDoc{
			{NodeA: "ROOM", NodeB: "DOOR", Length: 1},
			{NodeA: "DOOR", NodeB: "HALL", Length: 1},
			{NodeA: "HALL", NodeB: "EXIT", Length: 1},
		},
	}
	b, err := building.FromDocument(doc)
	require.NoError(t, err)

	return b
}

func TestCloseNodeClosesIncidentEdges(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)

	r.NoError(hazard.CloseNode(b, "DOOR"))

	st, ok := b.NodeState("DOOR")
	r.True(ok)
	r.Equal(building.Closed, st)

	for _, e := range b.IncidentEdges("DOOR") {
		r.Equal(building.Closed, e.State)
	}
}

func TestCloseNodeUnknownID(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)

	r.ErrorIs(hazard.CloseNode(b, "NOPE"), building.ErrNodeNotFound)
}

func TestSetFireRaisesRiskWithinHopsAndClosesNode(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)

	r.NoError(hazard.SetFire(b, "DOOR", hazard.DefaultFireOptions()))

	st, _ := b.NodeState("DOOR")
	r.Equal(building.Closed, st)

	// all four edges sit within hop=2 of DOOR: ROOM-DOOR (0), DOOR-HALL (0),
	// HALL-EXIT (HALL is 1 hop from DOOR), and the EXIT->SUPER_EXIT wiring
	// edge (EXIT is 2 hops from DOOR).
	for _, e := range b.Edges() {
		r.Equal(10.0, e.Risk, "edge %s should have been raised to risk_value", e.ID)
	}
}

func TestSetFireAddMode(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)
	r.NoError(b.SetEdgeRisk("e1", 3))

	opts := hazard.FireOptions{RiskValue: 5, Hops: 1, Mode: hazard.RiskAdd}
	r.NoError(hazard.SetFire(b, "DOOR", opts))

	e1, _ := findEdge(b, "e1")
	r.Equal(8.0, e1.Risk)
}

func TestSetFireZeroHopsLeavesRiskUnchanged(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)

	opts := hazard.FireOptions{RiskValue: 99, Hops: 0, Mode: hazard.RiskMax}
	r.NoError(hazard.SetFire(b, "DOOR", opts))

	for _, e := range b.Edges() {
		r.Equal(0.0, e.Risk)
	}
}

func TestScaleServiceRate(t *testing.T) {
	r := require.New(t)
	b := chainBuilding(t)
	table := dynamics.NewTable(b)

	before, _ := table.Rate("DOOR")
	r.NoError(hazard.ScaleServiceRate(table, "DOOR", 0.5))
	after, _ := table.Rate("DOOR")

	r.Equal(before*0.5, after)
}

func findEdge(b *building.Building, id string) (*building.Edge, bool) {
	for _, e := range b.Edges() {
		if e.ID == id {
			return e, true
		}
	}

	return nil, false
}
