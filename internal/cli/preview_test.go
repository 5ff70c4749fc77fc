package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeDiagram(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDiagrams(t *testing.T) {
	dir := t.TempDir()
	writeDiagram(t, dir, "flow.mmd", "graph LR\nA[One] --> B[Two]")
	writeDiagram(t, dir, "steps.puml", "@startuml\nstart\n:Work;\nstop\n@enduml")
	writeDiagram(t, dir, "notes.log", "not a diagram")

	entries, err := scanDiagrams(context.Background(), dir)
	if err != nil {
		t.Fatalf("scanDiagrams() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	byName := map[string]DiagramEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	flow := byName["flow.mmd"]
	if flow.Dialect != "mermaid" || flow.Nodes != 2 || flow.Edges != 1 {
		t.Errorf("flow.mmd = %+v, want mermaid with 2 nodes and 1 edge", flow)
	}

	steps := byName["steps.puml"]
	if steps.Dialect != "plantuml" || steps.Nodes != 3 {
		t.Errorf("steps.puml = %+v, want plantuml with 3 nodes", steps)
	}
}

func TestScanDiagramsKeepsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeDiagram(t, dir, "empty.mmd", "   ")

	entries, err := scanDiagrams(context.Background(), dir)
	if err != nil {
		t.Fatalf("scanDiagrams() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Err == nil {
		t.Error("broken file should carry its parse error")
	}
}

func TestDiagramListModelNavigation(t *testing.T) {
	entries := []DiagramEntry{
		{Name: "a.mmd", Dialect: "mermaid", Nodes: 2},
		{Name: "b.mmd", Dialect: "mermaid", Nodes: 3},
	}
	m := NewDiagramListModel(entries)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DiagramListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	// Down at the end stays put
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DiagramListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down at end, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DiagramListModel)
	if m.Selected == nil || m.Selected.Name != "b.mmd" {
		t.Errorf("Selected = %+v, want b.mmd", m.Selected)
	}
}

func TestDiagramListModelSkipsBrokenOnEnter(t *testing.T) {
	entries := []DiagramEntry{
		{Name: "broken.mmd", Err: os.ErrInvalid},
	}
	m := NewDiagramListModel(entries)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DiagramListModel)
	if m.Selected != nil {
		t.Error("broken entries should not be selectable")
	}
}
