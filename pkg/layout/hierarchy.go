package layout

import (
	"context"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// TreeNode is one node of the hierarchy a layout positions. The tree is
// read-only input: the layout never mutates it, and node identity during
// placement is tracked in a separate position map.
type TreeNode struct {
	Element  Element     `json:"element"`
	Children []*TreeNode `json:"children,omitempty"`
}

// TreeNodePlaced is a positioned hierarchy node.
type TreeNodePlaced struct {
	Placed
	Level int `json:"level"`
	Index int `json:"index"`
}

// HierarchyResult is the computed geometry of a hierarchy layout.
type HierarchyResult struct {
	Nodes      []TreeNodePlaced `json:"nodes"`
	Connectors []Connector      `json:"connectors,omitempty"`
	Levels     int              `json:"levels"`
}

// Hierarchy arranges a tree into horizontally centered levels. Node height
// is shared across levels and capped at 0.8in; node width is shared within
// a level and capped at 2.0in. With connectors enabled, a line runs from
// each parent's bottom center to each child's top center. A nil root is a
// LAYOUT_EMPTY error.
func Hierarchy(ctx context.Context, bounds Bounds, root *TreeNode, levelGap, siblingGap float64, connectors bool) (*HierarchyResult, error) {
	count := 0
	if root != nil {
		count = countNodes(root)
	}
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, "hierarchy", count)
	start := time.Now()

	res, err := hierarchy(bounds, root, levelGap, siblingGap, connectors)
	hooks.OnLayoutComplete(ctx, "hierarchy", time.Since(start), err)
	return res, err
}

func hierarchy(bounds Bounds, root *TreeNode, levelGap, siblingGap float64, connectors bool) (*HierarchyResult, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeLayoutEmpty, "empty hierarchy provided")
	}

	levels := flattenTree(root)
	nLevels := len(levels)

	totalVGaps := float64(nLevels-1) * levelGap
	nodeHeight := min(0.8, (bounds.Height-totalVGaps)/float64(nLevels))

	// Positions are keyed by the node pointer, leaving the tree untouched.
	positions := make(map[*TreeNode]Bounds)
	var placed []TreeNodePlaced

	for levelIdx, levelNodes := range levels {
		n := len(levelNodes)
		totalHGaps := 0.0
		if n > 1 {
			totalHGaps = float64(n-1) * siblingGap
		}
		nodeWidth := min(2.0, (bounds.Width-totalHGaps)/float64(n))

		totalLevelWidth := float64(n)*nodeWidth + totalHGaps
		startX := bounds.Left + (bounds.Width-totalLevelWidth)/2
		y := bounds.Top + float64(levelIdx)*(nodeHeight+levelGap)

		for nodeIdx, node := range levelNodes {
			b := Bounds{
				Left:   startX + float64(nodeIdx)*(nodeWidth+siblingGap),
				Top:    y,
				Width:  nodeWidth,
				Height: nodeHeight,
			}
			positions[node] = b
			placed = append(placed, TreeNodePlaced{
				Placed: Placed{Element: node.Element, Bounds: b},
				Level:  levelIdx,
				Index:  nodeIdx,
			})
		}
	}

	var links []Connector
	if connectors {
		links = treeConnectors(root, positions)
	}

	return &HierarchyResult{Nodes: placed, Connectors: links, Levels: nLevels}, nil
}

// flattenTree groups nodes by depth, preserving sibling order.
func flattenTree(root *TreeNode) [][]*TreeNode {
	var levels [][]*TreeNode
	var walk func(n *TreeNode, depth int)
	walk = func(n *TreeNode, depth int) {
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return levels
}

// treeConnectors emits a line from each parent's bottom center to each
// placed child's top center. Children missing from the position map are
// skipped silently.
func treeConnectors(root *TreeNode, positions map[*TreeNode]Bounds) []Connector {
	var links []Connector
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		parent, ok := positions[n]
		if !ok {
			return
		}
		from := Point{X: parent.Left + parent.Width/2, Y: parent.Top + parent.Height}
		for _, c := range n.Children {
			if child, ok := positions[c]; ok {
				links = append(links, Connector{
					From:  from,
					To:    Point{X: child.Left + child.Width/2, Y: child.Top},
					Style: ConnectorLine,
				})
			}
			walk(c)
		}
	}
	walk(root)
	return links
}

func countNodes(n *TreeNode) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}
