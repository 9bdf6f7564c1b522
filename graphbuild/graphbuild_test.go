package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacsim/building"
	"github.com/katalvlaran/evacsim/config"
	"github.com/katalvlaran/evacsim/graphbuild"
)

func floatp(v float64) *float64 { return &v }

func tri() *building.Building {
	doc := building.Document{
		Floors: []string{"F1"},
		Nodes: []building.NodeDoc{
			{ID: "A", Type: building.Hall, Floor: "F1"},
			{ID: "B", Type: building.Hall, Floor: "F1"},
			{ID: "C", Type: building.Exit, Floor: "F1"},
		},
		Edges: []building.EdgeDoc{
			{NodeA: "A", NodeB: "B", Length: 5},
			{NodeA: "B", NodeB: "C", Length: 5},
		},
	}
	b, err := building.FromDocument(doc)
	if err != nil {
		panic(err)
	}

	return b
}

func TestProjectBasicBidirectional(t *testing.T) {
	r := require.New(t)
	b := tri()
	cfg := config.DefaultPlannerConfig()

	p := graphbuild.Project(b, cfg, nil)
	r.Len(p.Adjacency["A"], 1)
	r.Equal("B", p.Adjacency["A"][0].To)
	r.InDelta(5.0, p.Adjacency["A"][0].Cost, 1e-9)

	// reverse direction exists too (bidirectional)
	foundBA := false
	for _, nb := range p.Adjacency["B"] {
		if nb.To == "A" {
			foundBA = true
		}
	}
	r.True(foundBA)
}

func TestProjectSkipsClosedNode(t *testing.T) {
	r := require.New(t)
	b := tri()
	r.NoError(b.SetNodeState("B", building.Closed))

	p := graphbuild.Project(b, config.DefaultPlannerConfig(), nil)
	r.Empty(p.Adjacency["A"], "edges touching a closed node must vanish")
	r.Empty(p.Adjacency["B"])
}

func TestProjectSkipsClosedEdge(t *testing.T) {
	r := require.New(t)
	b := tri()
	edges := b.Edges()
	r.NoError(b.SetEdgeState(edges[0].ID, building.Closed))

	p := graphbuild.Project(b, config.DefaultPlannerConfig(), nil)
	r.Empty(p.Adjacency["A"])
}

func TestProjectCongestionAndReverseFallback(t *testing.T) {
	r := require.New(t)
	b := tri()
	cfg := config.PlannerConfig{LengthWeight: 1, CongestionWeight: 1}
	occ := graphbuild.CongestionSnapshot{
		{From: "A", To: "B"}: 3,
	}
	p := graphbuild.Project(b, cfg, occ)

	r.InDelta(8.0, p.Adjacency["A"][0].Cost, 1e-9) // 5 + 3

	// reverse B->A falls back to the forward occupancy of 3.
	var revCost float64
	for _, nb := range p.Adjacency["B"] {
		if nb.To == "A" {
			revCost = nb.Cost
		}
	}
	r.InDelta(8.0, revCost, 1e-9)
}

func TestProjectRiskWeight(t *testing.T) {
	r := require.New(t)
	b := tri()
	edges := b.Edges()
	r.NoError(b.SetEdgeRisk(edges[0].ID, 10))

	cfg := config.PlannerConfig{LengthWeight: 1, RiskWeight: 1}
	p := graphbuild.Project(b, cfg, nil)
	r.InDelta(15.0, p.Adjacency["A"][0].Cost, 1e-9)
}

func TestBuildPositionMap(t *testing.T) {
	r := require.New(t)
	b := tri()
	pm := graphbuild.BuildPositionMap(b)
	r.Contains(pm, "A")
	r.Contains(pm, building.SuperExit)
}
