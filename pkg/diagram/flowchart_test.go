package diagram

import (
	"testing"

	"github.com/slidesmith/slidesmith/pkg/errors"
)

func TestParseFlowchartHeader(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Direction
	}{
		{"graph TD", "graph TD\nA --> B", DirTopDown},
		{"graph LR", "graph LR\nA --> B", DirLeftRight},
		{"graph RL", "graph RL\nA --> B", DirRightLeft},
		{"graph BT", "graph BT\nA --> B", DirBottomUp},
		{"flowchart LR", "flowchart LR\nA --> B", DirLeftRight},
		{"no header", "A --> B", DirTopDown},
		{"unknown token", "graph XY\nA --> B", DirTopDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseFlowchart(tt.code)
			if err != nil {
				t.Fatalf("ParseFlowchart() error = %v", err)
			}
			if d.Direction != tt.want {
				t.Errorf("Direction = %v, want %v", d.Direction, tt.want)
			}
		})
	}
}

func TestParseFlowchartShapes(t *testing.T) {
	tests := []struct {
		ref       string
		wantID    string
		wantLabel string
		wantShape Shape
	}{
		{"A[Rect]", "A", "Rect", ShapeRectangle},
		{"A(Rounded)", "A", "Rounded", ShapeRoundedRectangle},
		{"A{Choice}", "A", "Choice", ShapeDiamond},
		{"A((Ball))", "A", "Ball", ShapeCircle},
		{"A([Pill])", "A", "Pill", ShapeStadium},
		{"A[/Data/]", "A", "Data", ShapeParallelogram},
		{`A[\Slope\]`, "A", "Slope", ShapeTrapezoid},
		{"A[[DB]]", "A", "DB", ShapeDatabase},
		{"A", "A", "A", ShapeRectangle},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			d, err := ParseFlowchart("graph TD\n" + tt.ref)
			if err != nil {
				t.Fatalf("ParseFlowchart() error = %v", err)
			}
			if len(d.Nodes) != 1 {
				t.Fatalf("len(Nodes) = %d, want 1", len(d.Nodes))
			}
			n := d.Nodes[0]
			if n.ID != tt.wantID || n.Label != tt.wantLabel || n.Shape != tt.wantShape {
				t.Errorf("node = {%s %s %s}, want {%s %s %s}",
					n.ID, n.Label, n.Shape, tt.wantID, tt.wantLabel, tt.wantShape)
			}
		})
	}
}

// Double-bracket delimiters must win over their single-bracket prefixes.
func TestParseFlowchartDelimiterPriority(t *testing.T) {
	d, err := ParseFlowchart("graph TD\nA[[Store]] --> B((Hub))")
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	a, _ := d.NodeByID("A")
	if a.Shape != ShapeDatabase {
		t.Errorf("A shape = %v, want %v", a.Shape, ShapeDatabase)
	}
	b, _ := d.NodeByID("B")
	if b.Shape != ShapeCircle {
		t.Errorf("B shape = %v, want %v", b.Shape, ShapeCircle)
	}
}

func TestParseFlowchartEdges(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		wantLabel string
		wantStyle EdgeStyle
		wantKind  EdgeKind
	}{
		{"solid arrow", "A --> B", "", EdgeSolid, EdgeArrow},
		{"labeled arrow", "A -->|go| B", "go", EdgeSolid, EdgeArrow},
		{"dashed arrow", "A -.-> B", "", EdgeDashed, EdgeArrow},
		{"labeled dashed", "A -.->|maybe| B", "maybe", EdgeDashed, EdgeArrow},
		{"thick arrow", "A ===> B", "", EdgeSolid, EdgeThickArrow},
		{"plain line", "A --- B", "", EdgeSolid, EdgeLine},
		{"labeled line", "A ---|near| B", "near", EdgeSolid, EdgeLine},
		{"dashed line", "A -.- B", "", EdgeDashed, EdgeLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseFlowchart("graph TD\n" + tt.code)
			if err != nil {
				t.Fatalf("ParseFlowchart() error = %v", err)
			}
			if len(d.Edges) != 1 {
				t.Fatalf("len(Edges) = %d, want 1", len(d.Edges))
			}
			e := d.Edges[0]
			if e.Source != "A" || e.Target != "B" {
				t.Errorf("edge = %s->%s, want A->B", e.Source, e.Target)
			}
			if e.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", e.Label, tt.wantLabel)
			}
			if e.Style != tt.wantStyle {
				t.Errorf("Style = %v, want %v", e.Style, tt.wantStyle)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
		})
	}
}

func TestParseFlowchartChain(t *testing.T) {
	d, err := ParseFlowchart("graph LR\nA --> B --> C")
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	if len(d.Nodes) != 3 {
		t.Errorf("len(Nodes) = %d, want 3", len(d.Nodes))
	}
	if len(d.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(d.Edges))
	}
	if d.Edges[0].Source != "A" || d.Edges[0].Target != "B" {
		t.Errorf("edge 0 = %s->%s, want A->B", d.Edges[0].Source, d.Edges[0].Target)
	}
	if d.Edges[1].Source != "B" || d.Edges[1].Target != "C" {
		t.Errorf("edge 1 = %s->%s, want B->C", d.Edges[1].Source, d.Edges[1].Target)
	}
}

func TestParseFlowchartFirstDefinitionWins(t *testing.T) {
	d, err := ParseFlowchart("graph TD\nA[First] --> B\nA[Second] --> C")
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	a, ok := d.NodeByID("A")
	if !ok {
		t.Fatal("node A missing")
	}
	if a.Label != "First" {
		t.Errorf("A label = %q, want %q", a.Label, "First")
	}
}

// Every edge endpoint must reference a declared node, including nodes
// created implicitly by an edge line.
func TestParseFlowchartEdgeEndpointsResolve(t *testing.T) {
	d, err := ParseFlowchart(`graph TD
		A[Start] --> B{Check}
		B -->|yes| C[Do it]
		B -->|no| D
		C --> D`)
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	for _, e := range d.Edges {
		if _, ok := d.NodeByID(e.Source); !ok {
			t.Errorf("edge source %q has no node", e.Source)
		}
		if _, ok := d.NodeByID(e.Target); !ok {
			t.Errorf("edge target %q has no node", e.Target)
		}
	}
}

func TestParseFlowchartSkipsCommentsAndSubgraphs(t *testing.T) {
	d, err := ParseFlowchart(`graph TD
		%% a comment
		subgraph cluster
		A --> B
		end`)
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	if len(d.Nodes) != 2 || len(d.Edges) != 1 {
		t.Errorf("nodes/edges = %d/%d, want 2/1", len(d.Nodes), len(d.Edges))
	}
}

func TestParseFlowchartEmpty(t *testing.T) {
	_, err := ParseFlowchart("  \n  %% nothing here\n")
	if !errors.Is(err, errors.ErrCodeParseEmpty) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeParseEmpty)
	}
}
