// Package dot exports parsed diagrams as Graphviz DOT and renders them to
// SVG or PNG. This is the preview path: it draws the diagram's graph shape
// without running the slide layout engine.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/slidesmith/slidesmith/pkg/diagram"
)

// gvShapes maps node shapes to Graphviz shape names.
var gvShapes = map[diagram.Shape]string{
	diagram.ShapeRectangle:        "box",
	diagram.ShapeRoundedRectangle: "box",
	diagram.ShapeDiamond:          "diamond",
	diagram.ShapeCircle:           "circle",
	diagram.ShapeStadium:          "box",
	diagram.ShapeHexagon:          "hexagon",
	diagram.ShapeParallelogram:    "parallelogram",
	diagram.ShapeTrapezoid:        "trapezium",
	diagram.ShapeDatabase:         "cylinder",
}

// ToDOT converts a parsed diagram to Graphviz DOT. The diagram's declared
// direction sets rankdir; node colors from the DSL become fill colors.
func ToDOT(d *diagram.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(d.Direction))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		attrs := edgeAttrs(e)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rankdir(dir diagram.Direction) string {
	switch dir {
	case diagram.DirLeftRight:
		return "LR"
	case diagram.DirRightLeft:
		return "RL"
	case diagram.DirBottomUp:
		return "BT"
	default:
		return "TB"
	}
}

func nodeAttrs(n diagram.Node) []string {
	shape, ok := gvShapes[n.Shape]
	if !ok {
		shape = "box"
	}

	attrs := []string{
		fmt.Sprintf("label=%q", n.Label),
		fmt.Sprintf("shape=%s", shape),
	}
	if n.FillColor != nil {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.FillColor.String()))
	}
	if n.TextColor != nil {
		attrs = append(attrs, fmt.Sprintf("fontcolor=%q", n.TextColor.String()))
	}
	return attrs
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.Style == diagram.EdgeDashed {
		attrs = append(attrs, "style=dashed")
	}
	switch e.Kind {
	case diagram.EdgeLine:
		attrs = append(attrs, "dir=none")
	case diagram.EdgeThickArrow:
		attrs = append(attrs, "penwidth=2.5")
	}
	return attrs
}

// RenderSVG renders a diagram to SVG via Graphviz.
func RenderSVG(ctx context.Context, d *diagram.Diagram) ([]byte, error) {
	return render(ctx, d, graphviz.SVG)
}

// RenderPNG renders a diagram to PNG via Graphviz.
func RenderPNG(ctx context.Context, d *diagram.Diagram) ([]byte, error) {
	return render(ctx, d, graphviz.PNG)
}

func render(ctx context.Context, d *diagram.Diagram, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(d)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
