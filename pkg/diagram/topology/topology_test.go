package topology

import (
	"testing"

	"github.com/slidesmith/slidesmith/pkg/diagram"
)

func mustParse(t *testing.T, code string) *diagram.Diagram {
	t.Helper()
	d, err := diagram.ParseFlowchart(code)
	if err != nil {
		t.Fatalf("ParseFlowchart() error = %v", err)
	}
	return d
}

func TestIsLinearFlow(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"chain", "A --> B --> C", true},
		{"single node", "A[Only]", true},
		{"branch", "A --> B\nA --> C", false},
		{"merge", "A --> C\nB --> C", true},
		{"cycle", "A --> B\nB --> A", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLinearFlow(mustParse(t, tt.code)); got != tt.want {
				t.Errorf("IsLinearFlow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHierarchy(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"tree", "A --> B\nA --> C\nB --> D", true},
		{"chain", "A --> B --> C", true},
		{"no edges", "A[Only]", false},
		{"two roots", "A --> C\nB --> D", false},
		{"merge breaks tree", "A --> B\nA --> C\nB --> D\nC --> D", false},
		{"cycle has no root", "A --> B\nB --> A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHierarchy(mustParse(t, tt.code)); got != tt.want {
				t.Errorf("IsHierarchy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlowOrderDiamond(t *testing.T) {
	d := mustParse(t, "A --> B\nA --> C\nB --> D\nC --> D")
	order := FlowOrder(d)

	ids := make([]string, len(order))
	for i, n := range order {
		ids[i] = n.ID
	}
	want := []string{"A", "B", "C", "D"}
	if len(ids) != len(want) {
		t.Fatalf("len(order) = %d, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestFlowOrderNoRoot(t *testing.T) {
	// Pure cycle: the first declared node seeds the walk.
	d := mustParse(t, "A --> B\nB --> C\nC --> A")
	order := FlowOrder(d)
	if len(order) != 3 {
		t.Fatalf("len(order) = %d, want 3", len(order))
	}
	if order[0].ID != "A" {
		t.Errorf("order[0] = %q, want A", order[0].ID)
	}
}

func TestFlowOrderUnreachableAppended(t *testing.T) {
	d := mustParse(t, "A --> B\nX[Island]")
	order := FlowOrder(d)
	if len(order) != 3 {
		t.Fatalf("len(order) = %d, want 3", len(order))
	}
	if order[len(order)-1].ID != "X" {
		t.Errorf("last node = %q, want X", order[len(order)-1].ID)
	}
}

func TestBuildTree(t *testing.T) {
	d := mustParse(t, "A --> B\nA --> C\nB --> D")
	tree := BuildTree(d)
	if tree == nil {
		t.Fatal("BuildTree() = nil, want tree")
	}
	if tree.Node.ID != "A" {
		t.Errorf("root = %q, want A", tree.Node.ID)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(tree.Children))
	}
	if tree.Children[0].Node.ID != "B" || tree.Children[1].Node.ID != "C" {
		t.Errorf("children = %q,%q, want B,C", tree.Children[0].Node.ID, tree.Children[1].Node.ID)
	}
	if len(tree.Children[0].Children) != 1 || tree.Children[0].Children[0].Node.ID != "D" {
		t.Errorf("B subtree = %+v, want single child D", tree.Children[0].Children)
	}
}

func TestBuildTreeNoRoot(t *testing.T) {
	d := mustParse(t, "A --> B\nB --> A")
	if tree := BuildTree(d); tree != nil {
		t.Errorf("BuildTree(cycle) = %+v, want nil", tree)
	}
}

// BuildTree must not alter the diagram it reads.
func TestBuildTreeLeavesDiagramUntouched(t *testing.T) {
	d := mustParse(t, "A --> B\nA --> C")
	before := len(d.Nodes)
	_ = BuildTree(d)
	if len(d.Nodes) != before {
		t.Errorf("len(Nodes) changed: %d -> %d", before, len(d.Nodes))
	}
	for _, n := range d.Nodes {
		if n.ID == "" {
			t.Error("node mutated during tree build")
		}
	}
}
