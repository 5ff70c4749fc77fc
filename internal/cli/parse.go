package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/diagram/topology"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	dialect  string // force a dialect instead of auto-detecting
	jsonOut  bool   // print the parsed diagram as JSON
	topology bool   // print topology classification
}

// parseCommand creates the parse command for inspecting diagram source.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse diagram source and print its structure",
		Long: `Parse flow (mermaid-style) or activity (plantuml-style) diagram source
and print the resulting nodes and edges. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", "diagram dialect: mermaid or plantuml (default: auto-detect)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the parsed diagram as JSON")
	cmd.Flags().BoolVar(&opts.topology, "topology", false, "print topology classification")

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, path string, opts *parseOpts) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	prog := newProgress(c.Logger)

	dialect := diagram.Dialect(opts.dialect)
	if dialect == "" {
		dialect = diagram.DetectDialect(source)
		c.Logger.Debug("detected dialect", "dialect", dialect)
	}

	d, err := diagram.ParseAs(ctx, source, dialect)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes and %d edges", len(d.Nodes), len(d.Edges)))

	if opts.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	printKeyValue("Dialect", string(dialect))
	printKeyValue("Type", string(d.Type))
	printKeyValue("Direction", string(d.Direction))
	printStats(len(d.Nodes), len(d.Edges), false)
	printNewline()

	for _, n := range d.Nodes {
		printDetail("%s  %-20s %s", n.ID, n.Label, n.Shape)
	}
	for _, e := range d.Edges {
		label := ""
		if e.Label != "" {
			label = " " + StyleDim.Render("["+e.Label+"]")
		}
		printDetail("%s %s %s%s", e.Source, iconArrow, e.Target, label)
	}

	if opts.topology {
		printNewline()
		printKeyValue("Linear flow", fmt.Sprintf("%t", topology.IsLinearFlow(d)))
		printKeyValue("Hierarchy", fmt.Sprintf("%t", topology.IsHierarchy(d)))
		if order := topology.FlowOrder(d); len(order) > 0 {
			ids := make([]string, len(order))
			for i, n := range order {
				ids[i] = n.ID
			}
			printKeyValue("Flow order", strings.Join(ids, " "+iconArrow+" "))
		}
	}

	printNewline()
	printNextStep("Render it", fmt.Sprintf("slidesmith render %s -o diagram.svg", path))
	return nil
}

// readSource reads diagram source from a file, or from stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
