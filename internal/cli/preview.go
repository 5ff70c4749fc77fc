package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/pkg/diagram"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// diagramExts are the file extensions scanned by the preview command.
var diagramExts = map[string]bool{
	".mmd":      true,
	".mermaid":  true,
	".puml":     true,
	".plantuml": true,
	".txt":      true,
}

// DiagramEntry describes one scanned diagram file.
type DiagramEntry struct {
	Path     string
	Name     string
	Dialect  diagram.Dialect
	Nodes    int
	Edges    int
	Modified time.Time
	Err      error
}

// previewCommand creates the preview command for browsing diagram files.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [dir]",
		Short: "Interactively browse and inspect diagram files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return c.runPreview(cmd.Context(), dir)
		},
	}
}

func (c *CLI) runPreview(ctx context.Context, dir string) error {
	entries, err := scanDiagrams(ctx, dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarning("No diagram files found in %s", dir)
		printDetail("Looking for: %s", strings.Join(sortedExts(), ", "))
		return nil
	}

	model := NewDiagramListModel(entries)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(DiagramListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	entry := *m.Selected
	printNewline()
	printKeyValue("File", entry.Path)
	printKeyValue("Dialect", string(entry.Dialect))
	printStats(entry.Nodes, entry.Edges, false)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("slidesmith render %s -o %s.svg", entry.Path, strings.TrimSuffix(entry.Name, filepath.Ext(entry.Name))))
	return nil
}

// scanDiagrams reads the directory and best-effort parses each diagram file.
// Files that fail to parse are listed with their error rather than skipped.
func scanDiagrams(ctx context.Context, dir string) ([]DiagramEntry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var entries []DiagramEntry
	for _, f := range files {
		if f.IsDir() || !diagramExts[filepath.Ext(f.Name())] {
			continue
		}
		path := filepath.Join(dir, f.Name())
		entry := DiagramEntry{Path: path, Name: f.Name()}
		if info, err := f.Info(); err == nil {
			entry.Modified = info.ModTime()
		}

		data, err := os.ReadFile(path)
		if err != nil {
			entry.Err = err
			entries = append(entries, entry)
			continue
		}

		source := string(data)
		entry.Dialect = diagram.DetectDialect(source)
		d, err := diagram.ParseAs(ctx, source, entry.Dialect)
		if err != nil {
			entry.Err = err
		} else {
			entry.Nodes = len(d.Nodes)
			entry.Edges = len(d.Edges)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func sortedExts() []string {
	exts := make([]string, 0, len(diagramExts))
	for ext := range diagramExts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// =============================================================================
// DiagramListModel - Interactive diagram file selection
// =============================================================================

// DiagramListModel is the bubbletea model for interactive diagram selection.
type DiagramListModel struct {
	Entries  []DiagramEntry
	Cursor   int
	Selected *DiagramEntry
	Height   int
	Offset   int
}

// NewDiagramListModel creates a new diagram list model.
func NewDiagramListModel(entries []DiagramEntry) DiagramListModel {
	return DiagramListModel{
		Entries: entries,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m DiagramListModel) Init() tea.Cmd {
	return nil
}

func (m DiagramListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if entry.Err != nil {
				return m, nil
			}
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DiagramListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		nodes, edges := "—", "—"
		if e.Err == nil {
			nodes = fmt.Sprintf("%d", e.Nodes)
			edges = fmt.Sprintf("%d", e.Edges)
		}

		dialect := string(e.Dialect)
		if e.Err != nil {
			dialect = "error"
		}

		rows = append(rows, []string{cursor, e.Name, dialect, nodes, edges, formatRelativeTime(e.Modified)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Dialect", "Nodes", "Edges", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			e := m.Entries[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 5 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if e.Err == nil {
					if col != 5 {
						return base.Foreground(colorGreen).Bold(true)
					}
					return base.Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if e.Err != nil {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// formatRelativeTime renders a timestamp relative to now for list display.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
