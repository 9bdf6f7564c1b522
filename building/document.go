package building

import "fmt"

// Document is the already-parsed shape of a building JSON-like document.
// Ingestion of the raw bytes is out of scope for this module; callers hand
// FromDocument a Document decoded by whatever means they prefer
// (encoding/json, yaml.v3, a test fixture literal, ...).
type Document struct {
	Floors []string   `json:"floors" yaml:"floors"`
	Nodes  []NodeDoc  `json:"nodes" yaml:"nodes"`
	Edges  []EdgeDoc  `json:"edges" yaml:"edges"`
}

// NodeDoc is the wire shape of a single node entry.
type NodeDoc struct {
	ID         string   `json:"id" yaml:"id"`
	Type       NodeType `json:"type" yaml:"type"`
	Width      *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	X          float64  `json:"x" yaml:"x"`
	Y          float64  `json:"y" yaml:"y"`
	Floor      string   `json:"floor" yaml:"floor"`
	FloorIndex *int     `json:"floor_index,omitempty" yaml:"floor_index,omitempty"`
	State      State    `json:"state,omitempty" yaml:"state,omitempty"`
}

// EdgeDoc is the wire shape of a single edge entry.
type EdgeDoc struct {
	NodeA          string         `json:"node_a" yaml:"node_a"`
	NodeB          string         `json:"node_b" yaml:"node_b"`
	Length         float64        `json:"length" yaml:"length"`
	WeightFactor   *float64       `json:"weight_factor,omitempty" yaml:"weight_factor,omitempty"`
	Risk           *float64       `json:"risk,omitempty" yaml:"risk,omitempty"`
	Directionality Directionality `json:"directionality,omitempty" yaml:"directionality,omitempty"`
	State          State          `json:"state,omitempty" yaml:"state,omitempty"`
}

// FromDocument builds a Building from a parsed Document, applying every
// documented default (width 1.0, state open, directionality bidirectional,
// weight_factor 1.0, risk 0.0) and wiring SUPER_EXIT from every Exit node
// via a zero-length, zero-cost directed edge.
//
// FromDocument performs the structural validation a loader naturally sits
// on top of: duplicate node IDs and edges naming an undeclared endpoint are
// rejected. Full document-schema validation is assumed to happen upstream.
func FromDocument(doc Document) (*Building, error) {
	b := &Building{
		Floors: append([]string(nil), doc.Floors...),
		nodes:  make(map[string]*Node, len(doc.Nodes)+1),
		edges:  make([]*Edge, 0, len(doc.Edges)+len(doc.Nodes)),
	}

	for i, nd := range doc.Nodes {
		if nd.ID == "" {
			return nil, fmt.Errorf("%w: node at index %d", ErrEmptyNodeID, i)
		}
		if _, exists := b.nodes[nd.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, nd.ID)
		}

		width := 1.0
		if nd.Width != nil {
			width = *nd.Width
		}
		floorIdx := nd.FloorIndex
		idx := 0
		if floorIdx != nil {
			idx = *floorIdx
		} else {
			idx = floorIndexOf(b.Floors, nd.Floor)
		}
		state := nd.State
		if state == "" {
			state = Open
		}
		n := &Node{
			ID:         nd.ID,
			Type:       nd.Type,
			Width:      width,
			X:          nd.X,
			Y:          nd.Y,
			Floor:      nd.Floor,
			FloorIndex: idx,
			State:      state,
		}
		b.nodes[nd.ID] = n
		if n.Type == Exit {
			b.exits = append(b.exits, n.ID)
		}
	}

	nextID := 1
	for _, ed := range doc.Edges {
		if _, ok := b.nodes[ed.NodeA]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, ed.NodeA)
		}
		if _, ok := b.nodes[ed.NodeB]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, ed.NodeB)
		}

		weightFactor := 1.0
		if ed.WeightFactor != nil {
			weightFactor = *ed.WeightFactor
		}
		risk := 0.0
		if ed.Risk != nil {
			risk = *ed.Risk
		}
		dir := ed.Directionality
		if dir == "" {
			dir = Bidirectional
		}
		state := ed.State
		if state == "" {
			state = Open
		}

		b.edges = append(b.edges, &Edge{
			ID:             fmt.Sprintf("e%d", nextID),
			A:              ed.NodeA,
			B:              ed.NodeB,
			Directionality: dir,
			Length:         ed.Length,
			WeightFactor:   weightFactor,
			Risk:           risk,
			State:          state,
		})
		nextID++
	}

	// Wire SUPER_EXIT: a zero-length, zero-cost directed edge from every
	// real exit to the synthetic universal goal.
	if len(b.exits) > 0 {
		b.nodes[SuperExit] = &Node{ID: SuperExit, Type: Other, State: Open}
		for _, exitID := range b.exits {
			b.edges = append(b.edges, &Edge{
				ID:             fmt.Sprintf("e%d", nextID),
				A:              exitID,
				B:              SuperExit,
				Directionality: Unidirectional,
				Length:         0,
				WeightFactor:   1.0,
				Risk:           0,
				State:          Open,
			})
			nextID++
		}
	}

	return b, nil
}

// floorIndexOf returns the position of floor within floors, or 0 if absent.
// Mirrors the source's incremental-assignment fallback for documents that
// omit an explicit floor_index.
func floorIndexOf(floors []string, floor string) int {
	for i, f := range floors {
		if f == floor {
			return i
		}
	}
	return 0
}
