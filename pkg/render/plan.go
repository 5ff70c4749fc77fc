// Package render turns parsed diagrams into placeable slide geometry.
//
// A diagram's topology picks the layout strategy: linear flows and general
// graphs take the flow layout (ordered by breadth-first traversal),
// single-rooted trees take the hierarchy layout. The result is a Plan of
// placed elements and connectors; applying the plan to a presentation
// backend is the caller's job.
package render

import (
	"context"

	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/diagram/topology"
	"github.com/slidesmith/slidesmith/pkg/layout"
)

// Strategy names the layout a plan used.
type Strategy string

// Plan strategies.
const (
	StrategyFlow      Strategy = "flow"
	StrategyHierarchy Strategy = "hierarchy"
)

// Flow layout tuning for rendered diagrams.
const (
	flowGap    = 0.4
	levelGap   = 0.8
	siblingGap = 0.3
)

// Plan is the computed geometry for one diagram: placed node elements and
// the connectors between them.
type Plan struct {
	Strategy   Strategy           `json:"strategy"`
	Elements   []layout.Placed    `json:"elements"`
	Connectors []layout.Connector `json:"connectors,omitempty"`
	NodeCount  int                `json:"node_count"`
	EdgeCount  int                `json:"edge_count"`
}

// BuildPlan lays out a parsed diagram inside bounds. Linear diagrams flow
// along their declared direction; tree-shaped diagrams become hierarchies;
// everything else falls back to a flow over the traversal order. A
// hierarchy whose tree cannot be rooted also falls back to flow.
func BuildPlan(ctx context.Context, d *diagram.Diagram, style Style, bounds layout.Bounds) (*Plan, error) {
	if topology.IsLinearFlow(d) {
		return flowPlan(ctx, d, style, bounds)
	}
	if topology.IsHierarchy(d) {
		if plan, err := hierarchyPlan(ctx, d, style, bounds); plan != nil || err != nil {
			return plan, err
		}
	}
	return flowPlan(ctx, d, style, bounds)
}

func flowPlan(ctx context.Context, d *diagram.Diagram, style Style, bounds layout.Bounds) (*Plan, error) {
	dir := layout.Vertical
	if d.Direction.IsHorizontal() {
		dir = layout.Horizontal
	}

	ordered := topology.FlowOrder(d)
	elements := make([]layout.Element, len(ordered))
	for i, n := range ordered {
		elements[i] = NodeElement(n, style)
	}

	res, err := layout.Flow(ctx, bounds, elements, dir, flowGap, layout.ConnectorArrow)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Strategy:   StrategyFlow,
		Elements:   res.Steps,
		Connectors: res.Connectors,
		NodeCount:  len(d.Nodes),
		EdgeCount:  len(d.Edges),
	}, nil
}

// hierarchyPlan returns (nil, nil) when the diagram has no tree root,
// signaling the flow fallback.
func hierarchyPlan(ctx context.Context, d *diagram.Diagram, style Style, bounds layout.Bounds) (*Plan, error) {
	tree := topology.BuildTree(d)
	if tree == nil {
		return nil, nil
	}

	res, err := layout.Hierarchy(ctx, bounds, convertTree(tree, style), levelGap, siblingGap, true)
	if err != nil {
		return nil, err
	}

	elements := make([]layout.Placed, len(res.Nodes))
	for i, n := range res.Nodes {
		elements[i] = n.Placed
	}

	return &Plan{
		Strategy:   StrategyHierarchy,
		Elements:   elements,
		Connectors: res.Connectors,
		NodeCount:  len(d.Nodes),
		EdgeCount:  len(d.Edges),
	}, nil
}

func convertTree(t *topology.Tree, style Style) *layout.TreeNode {
	node := &layout.TreeNode{Element: NodeElement(t.Node, style)}
	for _, c := range t.Children {
		node.Children = append(node.Children, convertTree(c, style))
	}
	return node
}
