// Package pkg provides the core libraries for Slidesmith slide content generation.
//
// # Overview
//
// Slidesmith turns compact diagram text into positioned slide content:
// shapes, textboxes, and connectors sized in inches for a standard slide
// canvas. The pkg directory is organized into five main areas:
//
//  1. [diagram] - Flow and activity diagram parsing into a typed graph
//  2. [layout] - Deterministic 2-D layout (grid, list, hierarchy, flow)
//  3. [autofit] - Text fitting: font sizing, columns, slide splitting
//  4. [render] - Diagram-to-slide placement planning and DOT/SVG export
//  5. [ops] - Operations that place results onto a presentation backend
//
// # Architecture
//
// The typical data flow through Slidesmith:
//
//	Diagram source (mermaid/plantuml style)
//	         ↓
//	    [diagram] package (parse into nodes and edges)
//	         ↓
//	    [diagram/topology] package (classify: linear, hierarchy, general)
//	         ↓
//	    [render] package (plan element positions and connectors)
//	         ↓
//	    [ops] package (place onto a [backend.Presentation])
//
// Free-form text follows a shorter path: [autofit] measures it against a
// container and decides between shrinking the font, flowing into columns,
// or splitting across slides.
//
// # Quick Start
//
// Parse a diagram and plan its slide placement:
//
//	import (
//	    "context"
//	    "github.com/slidesmith/slidesmith/pkg/diagram"
//	    "github.com/slidesmith/slidesmith/pkg/layout"
//	    "github.com/slidesmith/slidesmith/pkg/render"
//	    "github.com/slidesmith/slidesmith/pkg/theme"
//	)
//
//	ctx := context.Background()
//	d, _ := diagram.Parse(ctx, "graph LR\nA[Fetch] --> B[Build]")
//	plan, _ := render.BuildPlan(ctx, d, render.DefaultStyle(theme.Default()), layout.DefaultBounds())
//	for _, el := range plan.Elements {
//	    fmt.Printf("%s at (%.1f, %.1f)\n", el.Element.Text, el.Bounds.Left, el.Bounds.Top)
//	}
//
// # Main Packages
//
// [diagram] - Parsers for the flow (mermaid-style) and activity
// (plantuml-style) dialects, with automatic dialect detection. Produces a
// typed [diagram.Diagram] of nodes (shape, label, colors) and edges.
//
// [diagram/topology] - Structure classification over a parsed diagram:
// linear-flow and hierarchy checks, deterministic BFS flow ordering, and
// tree construction for hierarchy layout.
//
// [layout] - Pure layout arithmetic in slide inches: grid cells, stacked
// lists with alignment, centered-level hierarchies with connectors, and
// step-by-step flows. All results are deterministic for a given input.
//
// [autofit] - Text measurement and fitting. Estimates wrapped line counts
// from font size and container width, then picks a strategy: shrink the
// font, reflow into columns, or split across slides.
//
// [render] - Converts a parsed diagram into a placement plan (flow or
// hierarchy) and exports diagrams as DOT, SVG, or PNG via Graphviz.
//
// [ops] - High-level operations that run a layout or diagram plan and
// create the resulting shapes on a [backend.Presentation].
//
// [backend] - The presentation surface abstraction; [backend/memory]
// records created shapes in memory for tests and previews.
//
// [theme] - Color palette and font resolution with TOML file overrides.
//
// [errors] - Coded errors shared across the module.
//
// [observability] - Parse/layout/autofit hook registries for metrics.
//
// [cache] - File-based caching of rendered artifacts keyed by source hash.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/diagram/...  # Specific package
//
// [diagram]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/diagram
// [diagram/topology]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/diagram/topology
// [layout]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/layout
// [autofit]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/autofit
// [render]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/render
// [ops]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/ops
// [backend]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/backend
// [backend/memory]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/backend/memory
// [theme]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/theme
// [errors]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/errors
// [observability]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/observability
// [cache]: https://pkg.go.dev/github.com/slidesmith/slidesmith/pkg/cache
package pkg
