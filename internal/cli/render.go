package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/pkg/buildinfo"
	"github.com/slidesmith/slidesmith/pkg/cache"
	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/layout"
	"github.com/slidesmith/slidesmith/pkg/render"
	"github.com/slidesmith/slidesmith/pkg/render/dot"
	"github.com/slidesmith/slidesmith/pkg/theme"
)

const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatDOT  = "dot"
	formatPlan = "plan"

	// artifactTTL bounds how long rendered artifacts stay cached.
	artifactTTL = 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (default: input basename + format)
	format  string // output format: svg, png, dot, or plan
	dialect string // force a dialect instead of auto-detecting
	theme   string // TOML theme file for plan colors and fonts
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command for exporting diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render diagram source to SVG, PNG, DOT, or a placement plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg (default), png, dot, plan")
	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", "diagram dialect: mermaid or plantuml (default: auto-detect)")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "TOML theme file for plan output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// validateFormat checks that the requested output format is supported.
func validateFormat(format string) error {
	switch format {
	case formatSVG, formatPNG, formatDOT, formatPlan:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want svg, png, dot, or plan)", format)
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	ctx = withLogger(ctx, c.Logger)
	prog := newProgress(c.Logger)

	dialect := diagram.Dialect(opts.dialect)
	if dialect == "" {
		dialect = diagram.DetectDialect(source)
	}

	artifacts, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()

	keyer := renderKeyer()
	d, parseCached, err := loadOrParse(ctx, artifacts, keyer, source, dialect)
	if err != nil {
		return err
	}
	if parseCached {
		c.Logger.Debug("parsed diagram loaded from cache")
	}

	th := theme.Default()
	if opts.theme != "" {
		th, err = theme.LoadFile(opts.theme)
		if err != nil {
			return err
		}
	}

	key := keyer.ArtifactKey(cache.Fingerprint([]byte(source)), cache.ArtifactKeyOpts{
		Format:    opts.format,
		Direction: string(d.Direction),
		Theme:     th.Name,
	})

	data, cached, err := artifacts.Get(ctx, key)
	if err != nil {
		c.Logger.Debug("cache read failed", "err", err)
	}
	if !cached {
		data, err = renderArtifact(ctx, d, opts.format, render.DefaultStyle(th))
		if err != nil {
			return err
		}
		if err := artifacts.Set(ctx, key, data, artifactTTL); err != nil {
			c.Logger.Debug("cache write failed", "err", err)
		}
	}

	out := opts.output
	if out == "" {
		out = outputPath(path, opts.format)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done(fmt.Sprintf("Rendered %d nodes", len(d.Nodes)))
	printSuccess("Rendered %s", filepath.Base(path))
	printFile(out)
	printStats(len(d.Nodes), len(d.Edges), cached)
	return nil
}

// renderKeyer scopes cache keys by the build version, so entries written
// by one release are never read back by another.
func renderKeyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, buildinfo.Version+":")
}

// loadOrParse returns the parsed diagram for source, consulting the cache
// first. Cache failures fall through to a fresh parse; a fresh parse is
// stored for the next run. The bool reports a cache hit.
func loadOrParse(ctx context.Context, store cache.Cache, keyer cache.Keyer, source string, dialect diagram.Dialect) (*diagram.Diagram, bool, error) {
	key := keyer.DiagramKey(source, cache.DiagramKeyOpts{Dialect: string(dialect)})

	if data, ok, err := store.Get(ctx, key); ok && err == nil {
		var d diagram.Diagram
		if err := json.Unmarshal(data, &d); err == nil {
			return &d, true, nil
		}
		_ = store.Delete(ctx, key)
	}

	d, err := diagram.ParseAs(ctx, source, dialect)
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(d); err == nil {
		_ = store.Set(ctx, key, data, artifactTTL)
	}
	return d, false, nil
}

// renderArtifact produces the output bytes for the requested format.
func renderArtifact(ctx context.Context, d *diagram.Diagram, format string, style render.Style) ([]byte, error) {
	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spin.Start()
	defer spin.Stop()

	switch format {
	case formatDOT:
		return []byte(dot.ToDOT(d)), nil
	case formatSVG:
		return dot.RenderSVG(ctx, d)
	case formatPNG:
		return dot.RenderPNG(ctx, d)
	case formatPlan:
		plan, err := render.BuildPlan(ctx, d, style, layout.DefaultBounds())
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(plan, "", "  ")
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// outputPath derives the output file path from the input path and format.
// "flow.mmd" with format "svg" becomes "flow.svg"; stdin becomes "diagram.svg".
// Placement plans are JSON, so they get a .plan.json suffix.
func outputPath(input, format string) string {
	ext := format
	if format == formatPlan {
		ext = "plan.json"
	}
	if input == "-" {
		return "diagram." + ext
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + ext
}
