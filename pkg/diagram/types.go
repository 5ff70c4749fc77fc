package diagram

import (
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// Type classifies the parsed diagram's family.
type Type string

// Diagram types.
const (
	TypeFlowchart Type = "flowchart"
	TypeSequence  Type = "sequence"
	TypeHierarchy Type = "hierarchy"
)

// Direction is the declared flow direction of a diagram.
type Direction string

// Flow directions.
const (
	DirTopDown   Direction = "TD"
	DirBottomUp  Direction = "BU"
	DirLeftRight Direction = "LR"
	DirRightLeft Direction = "RL"
)

// IsHorizontal reports whether the direction runs along the horizontal axis.
func (d Direction) IsHorizontal() bool {
	return d == DirLeftRight || d == DirRightLeft
}

// Shape identifies the glyph a node is drawn with.
type Shape string

// Node shapes.
const (
	ShapeRectangle        Shape = "rectangle"
	ShapeRoundedRectangle Shape = "rounded_rectangle"
	ShapeDiamond          Shape = "diamond"
	ShapeCircle           Shape = "circle"
	ShapeStadium          Shape = "stadium"
	ShapeHexagon          Shape = "hexagon"
	ShapeParallelogram    Shape = "parallelogram"
	ShapeTrapezoid        Shape = "trapezoid"
	ShapeDatabase         Shape = "database"
)

// EdgeStyle is the stroke style of an edge.
type EdgeStyle string

// Edge stroke styles.
const (
	EdgeSolid  EdgeStyle = "solid"
	EdgeDashed EdgeStyle = "dashed"
	EdgeDotted EdgeStyle = "dotted"
)

// EdgeKind is the head/weight variant of an edge.
type EdgeKind string

// Edge kinds.
const (
	EdgeArrow      EdgeKind = "arrow"
	EdgeLine       EdgeKind = "line"
	EdgeThickArrow EdgeKind = "thick_arrow"
)

// Node is a vertex in a parsed diagram. Identity is ID, unique within a
// diagram; nodes are created during parsing and immutable afterward.
// Color fields are nil unless the DSL assigned an explicit color.
type Node struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Shape     Shape      `json:"shape"`
	FillColor *theme.RGB `json:"fill_color,omitempty"`
	TextColor *theme.RGB `json:"text_color,omitempty"`
	LineColor *theme.RGB `json:"line_color,omitempty"`
}

// Edge is a directed connection between two nodes. Multiple edges between
// the same pair are permitted and are not de-duplicated.
type Edge struct {
	Source string    `json:"source"`
	Target string    `json:"target"`
	Label  string    `json:"label,omitempty"`
	Style  EdgeStyle `json:"style"`
	Kind   EdgeKind  `json:"kind"`
}

// Diagram is a fully parsed diagram. Every edge's Source/Target references
// a node present in Nodes; the parsers guarantee this by auto-creating
// unlabeled nodes on first reference.
type Diagram struct {
	Type      Type      `json:"type"`
	Direction Direction `json:"direction"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
	Title     string    `json:"title,omitempty"`
	Subgraphs []Diagram `json:"subgraphs,omitempty"`
}

// NodeByID returns the node with the given ID and true, or a zero Node and
// false if not present.
func (d *Diagram) NodeByID(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// nodeSet accumulates nodes in first-seen order during parsing.
type nodeSet struct {
	nodes []Node
	byID  map[string]int
}

func newNodeSet() *nodeSet {
	return &nodeSet{byID: make(map[string]int)}
}

// add inserts a node if its ID is unseen and returns the ID.
// First occurrence wins: later definitions do not change shape or label.
func (s *nodeSet) add(n Node) string {
	if _, ok := s.byID[n.ID]; !ok {
		s.byID[n.ID] = len(s.nodes)
		s.nodes = append(s.nodes, n)
	}
	return n.ID
}

// put inserts or replaces a node, keeping its original position.
func (s *nodeSet) put(n Node) string {
	if i, ok := s.byID[n.ID]; ok {
		s.nodes[i] = n
		return n.ID
	}
	return s.add(n)
}

func (s *nodeSet) list() []Node {
	return s.nodes
}
