package diagram

import (
	"context"
	"testing"

	"github.com/slidesmith/slidesmith/pkg/errors"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Dialect
	}{
		{"startuml marker", "@startuml\nA --> B\n@enduml", DialectActivity},
		{"enduml only", "A --> B\n@enduml", DialectActivity},
		{"leading start", "start\n:Do;\nstop", DialectActivity},
		{"action delimiters", ":Initialize;\n:Run;", DialectActivity},
		{"graph header", "graph TD\nA --> B", DialectFlow},
		{"flowchart header", "flowchart LR\nA --> B", DialectFlow},
		{"bare arrows", "A --> B", DialectFlow},
		{"bare lines", "A --- B", DialectFlow},
		{"unrecognizable", "just some text", DialectFlow},
		{"empty", "", DialectFlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDialect(tt.code); got != tt.want {
				t.Errorf("DetectDialect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDispatch(t *testing.T) {
	ctx := context.Background()

	d, err := Parse(ctx, "graph LR\nA[In] --> B[Out]")
	if err != nil {
		t.Fatalf("Parse(flow) error = %v", err)
	}
	if d.Direction != DirLeftRight {
		t.Errorf("Direction = %v, want %v", d.Direction, DirLeftRight)
	}

	d, err = Parse(ctx, "@startuml\nstart\n:Work;\nstop\n@enduml")
	if err != nil {
		t.Fatalf("Parse(activity) error = %v", err)
	}
	if _, ok := d.NodeByID("action_1"); !ok {
		t.Error("activity parse did not produce action_1")
	}
}

func TestParseAsUnknownDialect(t *testing.T) {
	_, err := ParseAs(context.Background(), "A --> B", Dialect("graphviz"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidInput)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(context.Background(), "")
	if !errors.Is(err, errors.ErrCodeParseEmpty) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeParseEmpty)
	}
}

// Parsing the same source twice yields identical structures.
func TestParseDeterministic(t *testing.T) {
	const code = `graph TD
		A[Start] --> B{Check}
		B -->|yes| C[Proceed]
		B -->|no| D[Abort]`

	ctx := context.Background()
	first, err := Parse(ctx, code)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(ctx, code)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(first.Nodes) != len(second.Nodes) || len(first.Edges) != len(second.Edges) {
		t.Fatalf("parse not deterministic: %d/%d vs %d/%d nodes/edges",
			len(first.Nodes), len(first.Edges), len(second.Nodes), len(second.Edges))
	}
	for i := range first.Nodes {
		if first.Nodes[i].ID != second.Nodes[i].ID {
			t.Errorf("node order differs at %d: %q vs %q", i, first.Nodes[i].ID, second.Nodes[i].ID)
		}
	}
}
