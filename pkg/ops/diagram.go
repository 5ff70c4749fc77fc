package ops

import (
	"context"
	"fmt"

	"github.com/slidesmith/slidesmith/pkg/backend"
	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/layout"
	"github.com/slidesmith/slidesmith/pkg/render"
)

// DiagramResult reports a diagram render: what was parsed, which layout
// strategy the topology picked, and a descriptor per created shape.
type DiagramResult struct {
	Message         string             `json:"message"`
	SlideIndex      int                `json:"slide_index"`
	DetectedDialect string             `json:"detected_dialect,omitempty"`
	Strategy        render.Strategy    `json:"strategy"`
	NodeCount       int                `json:"node_count"`
	EdgeCount       int                `json:"edge_count"`
	Shapes          []ShapeRef         `json:"shapes"`
	Connectors      []layout.Connector `json:"connectors,omitempty"`
}

// RenderDiagram parses DSL source and renders it onto the slide. An empty
// dialect auto-detects and reports what was detected. Shapes placed before
// a failure stay on the slide.
func RenderDiagram(ctx context.Context, pres backend.Presentation, slideIndex int, code string, dialect diagram.Dialect, style render.Style, bounds *layout.Bounds) (*DiagramResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	detected := ""
	if dialect == "" {
		dialect = diagram.DetectDialect(code)
		detected = string(dialect)
	}

	d, err := diagram.ParseAs(ctx, code, dialect)
	if err != nil {
		return nil, err
	}

	plan, err := render.BuildPlan(ctx, d, style, targetBounds(pres, bounds))
	if err != nil {
		return nil, err
	}

	defaults := layout.Style{
		FontName: style.FontName,
		FontSize: style.FontSize,
	}
	if style.FillColor != nil {
		defaults.FillColor = *style.FillColor
	}
	if style.TextColor != nil {
		defaults.TextColor = *style.TextColor
	}
	if style.LineColor != nil {
		defaults.LineColor = *style.LineColor
	}

	refs := make([]ShapeRef, 0, len(plan.Elements))
	for _, el := range plan.Elements {
		h, err := placeElement(slide, el, defaults)
		if err != nil {
			return partialDiagramResult(slideIndex, detected, plan, refs), err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleNode, Bounds: el.Bounds})
	}

	lineRefs, err := placeConnectors(slide, plan.Connectors, style.ConnectorColor, style.ConnectorWidth)
	refs = append(refs, lineRefs...)
	if err != nil {
		return partialDiagramResult(slideIndex, detected, plan, refs), err
	}

	return &DiagramResult{
		Message:         fmt.Sprintf("Rendered %s diagram with %d nodes and %d edges", plan.Strategy, plan.NodeCount, plan.EdgeCount),
		SlideIndex:      slideIndex,
		DetectedDialect: detected,
		Strategy:        plan.Strategy,
		NodeCount:       plan.NodeCount,
		EdgeCount:       plan.EdgeCount,
		Shapes:          refs,
		Connectors:      plan.Connectors,
	}, nil
}

func partialDiagramResult(slideIndex int, detected string, plan *render.Plan, refs []ShapeRef) *DiagramResult {
	return &DiagramResult{
		Message:         fmt.Sprintf("Partial diagram render: %d shapes placed before failure", len(refs)),
		SlideIndex:      slideIndex,
		DetectedDialect: detected,
		Strategy:        plan.Strategy,
		NodeCount:       plan.NodeCount,
		EdgeCount:       plan.EdgeCount,
		Shapes:          refs,
	}
}
