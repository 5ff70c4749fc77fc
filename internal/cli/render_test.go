package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slidesmith/slidesmith/pkg/cache"
	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/render"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"dot", false},
		{"plan", false},
		{"pdf", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("validateFormat(%q) error code = %v, want INVALID_FORMAT", tt.format, errors.GetCode(err))
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format string
		want   string
	}{
		{"flow.mmd", "svg", "flow.svg"},
		{"dir/chart.puml", "png", "dir/chart.png"},
		{"noext", "dot", "noext.dot"},
		{"flow.mmd", "plan", "flow.plan.json"},
		{"-", "svg", "diagram.svg"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestLoadOrParseCachesDiagram(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	keyer := renderKeyer()
	source := "graph LR\nA --> B"

	d, hit, err := loadOrParse(ctx, store, keyer, source, diagram.DialectFlow)
	if err != nil {
		t.Fatalf("loadOrParse() error = %v", err)
	}
	if hit {
		t.Error("first call reported a cache hit")
	}
	if len(d.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(d.Nodes))
	}

	d2, hit, err := loadOrParse(ctx, store, keyer, source, diagram.DialectFlow)
	if err != nil {
		t.Fatalf("loadOrParse() second call error = %v", err)
	}
	if !hit {
		t.Error("second call missed the cache")
	}
	if len(d2.Nodes) != 2 || len(d2.Edges) != 1 {
		t.Errorf("cached diagram has %d nodes, %d edges, want 2 and 1", len(d2.Nodes), len(d2.Edges))
	}
}

func TestLoadOrParseCorruptEntry(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	ctx := context.Background()
	keyer := renderKeyer()
	source := "graph TD\nA --> B"
	key := keyer.DiagramKey(source, cache.DiagramKeyOpts{Dialect: string(diagram.DialectFlow)})
	if err := store.Set(ctx, key, []byte("not json"), 0); err != nil {
		t.Fatal(err)
	}

	d, hit, err := loadOrParse(ctx, store, keyer, source, diagram.DialectFlow)
	if err != nil {
		t.Fatalf("loadOrParse() error = %v", err)
	}
	if hit {
		t.Error("corrupt entry reported as a cache hit")
	}
	if len(d.Nodes) != 2 {
		t.Errorf("len(Nodes) = %d, want 2", len(d.Nodes))
	}
}

func TestRenderCommandPlan(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "flow.mmd")
	if err := os.WriteFile(src, []byte("graph LR\nA[Start] --> B[End]"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "flow.plan.json")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", src, "--format", "plan", "--output", out, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var plan render.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		t.Fatalf("plan output is not valid JSON: %v", err)
	}
	if plan.NodeCount != 2 || len(plan.Elements) != 2 {
		t.Errorf("plan has %d nodes, %d elements, want 2 each", plan.NodeCount, len(plan.Elements))
	}
	if len(plan.Connectors) != 1 {
		t.Errorf("plan has %d connectors, want 1", len(plan.Connectors))
	}
}

func TestRenderCommandThemedPlan(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "flow.mmd")
	if err := os.WriteFile(src, []byte("graph TD\nA --> B"), 0644); err != nil {
		t.Fatal(err)
	}
	themePath := filepath.Join(dir, "theme.toml")
	themeToml := "name = \"custom\"\n\n[colors]\nprimary = \"#112233\"\n"
	if err := os.WriteFile(themePath, []byte(themeToml), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.json")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", src, "--format", "plan", "--theme", themePath, "--output", out, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fill_color") {
		t.Error("themed plan output missing fill_color")
	}
}
