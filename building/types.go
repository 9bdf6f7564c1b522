package building

import (
	"errors"
	"sync"
)

// Sentinel errors for the building package.
var (
	// ErrEmptyNodeID indicates a node document with an empty ID.
	ErrEmptyNodeID = errors.New("building: node ID is empty")

	// ErrDuplicateNodeID indicates two node documents share the same ID.
	ErrDuplicateNodeID = errors.New("building: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("building: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("building: edge not found")

	// ErrUnknownEndpoint indicates an edge document names a node that was
	// never declared.
	ErrUnknownEndpoint = errors.New("building: edge endpoint not declared")

	// ErrNoExits indicates a building document has no node of type Exit,
	// so SUPER_EXIT would be unreachable from anywhere.
	ErrNoExits = errors.New("building: no exit nodes to wire SUPER_EXIT to")
)

// NodeType classifies a Node for the purposes of node-dynamics lookup.
// Any value other than the four named constants is treated by the
// dynamics package as a non-bottleneck type.
type NodeType string

// Recognized node types. Values outside this set are valid (Other) but
// never bottleneck the simulation (see dynamics.Table).
const (
	Room  NodeType = "room"
	Hall  NodeType = "hall"
	Door  NodeType = "door"
	Exit  NodeType = "exit"
	Stair NodeType = "stair"
	Other NodeType = "other"
)

// State is the open/closed lifecycle flag shared by Node and Edge.
type State string

const (
	// Open means the node or edge participates in planning and simulation.
	Open State = "open"
	// Closed means the node or edge is invisible to the planner and to
	// every tick-engine sub-step that would otherwise traverse it.
	Closed State = "closed"
)

// Directionality controls whether an Edge is traversable one-way or both ways.
type Directionality string

const (
	Unidirectional Directionality = "unidirectional"
	Bidirectional  Directionality = "bidirectional"
)

// SuperExit is the synthetic universal-goal node ID. Every real Exit node
// is connected to it via a zero-length, zero-cost directed edge.
const SuperExit = "SUPER_EXIT"

// Node is a single location in the building graph.
//
// ID is stable once assigned. State is the only field a hazard mutator
// changes after construction; everything else is set once at load time.
type Node struct {
	ID         string
	Type       NodeType
	Width      float64
	X, Y       float64
	Floor      string
	FloorIndex int
	State      State
}

// Edge connects two nodes. Risk and State are the only mutable fields;
// both are changed exclusively through hazard mutators.
type Edge struct {
	ID             string
	A, B           string
	Directionality Directionality
	Length         float64
	WeightFactor   float64
	Risk           float64
	State          State
}

// Open reports whether the edge itself, independent of its endpoints, is
// currently traversable.
func (e *Edge) Open() bool { return e.State == Open }

// Building is the full in-memory model: nodes, edges, floor ordering, and
// the synthetic SUPER_EXIT wiring.
//
// mu guards Node.State/Edge.State/Edge.Risk mutation and the rate at which
// callers observe it; nodes and edges themselves are never added or removed
// after FromDocument, only mutated in place, so mu need not protect the
// containing maps/slices against resizing during normal operation.
type Building struct {
	mu     sync.RWMutex
	Floors []string

	nodes map[string]*Node
	edges []*Edge
	exits []string
}

// Nodes returns the building's nodes keyed by ID. The returned map must not
// be mutated by the caller; use the exported mutators instead.
func (b *Building) Nodes() map[string]*Node { return b.nodes }

// Edges returns the building's edge list. The returned slice must not be
// mutated by the caller; use the exported mutators instead.
func (b *Building) Edges() []*Edge { return b.edges }

// Node looks up a node by ID.
func (b *Building) Node(id string) (*Node, bool) {
	n, ok := b.nodes[id]
	return n, ok
}

// Exits returns the IDs of every node of Type Exit, in document order.
func (b *Building) Exits() []string { return b.exits }
