package ops

import (
	"context"
	"fmt"

	"github.com/slidesmith/slidesmith/pkg/backend"
	"github.com/slidesmith/slidesmith/pkg/layout"
)

// LayoutResult reports one layout operation: a human-readable message, the
// echoed parameters, and a descriptor per created shape, with connector
// endpoints for the layouts that draw them.
type LayoutResult struct {
	Message    string             `json:"message"`
	SlideIndex int                `json:"slide_index"`
	LayoutType string             `json:"layout_type"`
	Direction  string             `json:"direction,omitempty"`
	Levels     int                `json:"levels,omitempty"`
	Overflow   int                `json:"overflow,omitempty"`
	Shapes     []ShapeRef         `json:"shapes"`
	Connectors []layout.Connector `json:"connectors,omitempty"`
}

// GridLayout places elements in a rows x cols grid on the slide.
func GridLayout(ctx context.Context, pres backend.Presentation, slideIndex int, elements []layout.Element, rows, cols int, gap float64, style layout.Style, bounds *layout.Bounds) (*LayoutResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	res, err := layout.Grid(ctx, targetBounds(pres, bounds), elements, rows, cols, gap)
	if err != nil {
		return nil, err
	}

	refs := make([]ShapeRef, 0, len(res.Cells))
	for _, cell := range res.Cells {
		h, err := placeElement(slide, cell.Placed, style)
		if err != nil {
			return partialLayoutResult(slideIndex, "grid", refs), err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleCell, Bounds: cell.Bounds})
	}

	return &LayoutResult{
		Message:    fmt.Sprintf("Created grid layout with %d elements (%dx%d)", len(refs), rows, cols),
		SlideIndex: slideIndex,
		LayoutType: "grid",
		Overflow:   res.Overflow,
		Shapes:     refs,
	}, nil
}

// ListLayout places elements in a vertical or horizontal list.
func ListLayout(ctx context.Context, pres backend.Presentation, slideIndex int, elements []layout.Element, dir layout.Direction, gap float64, align layout.Alignment, style layout.Style, bounds *layout.Bounds) (*LayoutResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	res, err := layout.List(ctx, targetBounds(pres, bounds), elements, dir, gap, align)
	if err != nil {
		return nil, err
	}

	refs := make([]ShapeRef, 0, len(res.Items))
	for _, item := range res.Items {
		h, err := placeElement(slide, item, style)
		if err != nil {
			return partialLayoutResult(slideIndex, "list", refs), err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleItem, Bounds: item.Bounds})
	}

	return &LayoutResult{
		Message:    fmt.Sprintf("Created %s list layout with %d elements", dir, len(refs)),
		SlideIndex: slideIndex,
		LayoutType: "list",
		Direction:  string(dir),
		Shapes:     refs,
	}, nil
}

// HierarchyLayout places a tree of elements with parent-child connectors.
func HierarchyLayout(ctx context.Context, pres backend.Presentation, slideIndex int, root *layout.TreeNode, levelGap, siblingGap float64, connectors bool, style layout.Style, bounds *layout.Bounds) (*LayoutResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	res, err := layout.Hierarchy(ctx, targetBounds(pres, bounds), root, levelGap, siblingGap, connectors)
	if err != nil {
		return nil, err
	}

	refs := make([]ShapeRef, 0, len(res.Nodes))
	for _, node := range res.Nodes {
		h, err := placeElement(slide, node.Placed, style)
		if err != nil {
			return partialLayoutResult(slideIndex, "hierarchy", refs), err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleNode, Bounds: node.Bounds})
	}

	lineRefs, err := placeConnectors(slide, res.Connectors, &style.LineColor, 1.5)
	refs = append(refs, lineRefs...)
	if err != nil {
		return partialLayoutResult(slideIndex, "hierarchy", refs), err
	}

	return &LayoutResult{
		Message:    fmt.Sprintf("Created hierarchy layout with %d nodes and %d connectors", len(res.Nodes), len(res.Connectors)),
		SlideIndex: slideIndex,
		LayoutType: "hierarchy",
		Levels:     res.Levels,
		Shapes:     refs,
		Connectors: res.Connectors,
	}, nil
}

// FlowLayout places process steps with connectors between them.
func FlowLayout(ctx context.Context, pres backend.Presentation, slideIndex int, steps []layout.Element, dir layout.Direction, gap float64, connector layout.ConnectorStyle, style layout.Style, bounds *layout.Bounds) (*LayoutResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	res, err := layout.Flow(ctx, targetBounds(pres, bounds), steps, dir, gap, connector)
	if err != nil {
		return nil, err
	}

	refs := make([]ShapeRef, 0, len(res.Steps))
	for _, step := range res.Steps {
		h, err := placeElement(slide, step, style)
		if err != nil {
			return partialLayoutResult(slideIndex, "flow", refs), err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleStep, Bounds: step.Bounds})
	}

	lineRefs, err := placeConnectors(slide, res.Connectors, &style.LineColor, 1.5)
	refs = append(refs, lineRefs...)
	if err != nil {
		return partialLayoutResult(slideIndex, "flow", refs), err
	}

	return &LayoutResult{
		Message:    fmt.Sprintf("Created %s flow layout with %d steps", dir, len(res.Steps)),
		SlideIndex: slideIndex,
		LayoutType: "flow",
		Direction:  string(dir),
		Shapes:     refs,
		Connectors: res.Connectors,
	}, nil
}

// partialLayoutResult reports the shapes placed before a failure; nothing
// is rolled back.
func partialLayoutResult(slideIndex int, layoutType string, refs []ShapeRef) *LayoutResult {
	return &LayoutResult{
		Message:    fmt.Sprintf("Partial %s layout: %d shapes placed before failure", layoutType, len(refs)),
		SlideIndex: slideIndex,
		LayoutType: layoutType,
		Shapes:     refs,
	}
}
