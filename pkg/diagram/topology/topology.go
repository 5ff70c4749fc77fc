// Package topology classifies parsed diagrams by graph structure and
// derives the orderings the layout strategies consume.
//
// Classification is intentionally coarse: a diagram is either a linear
// flow, a hierarchy, or a general graph. The renderer picks its layout
// strategy from these predicates and never needs full graph analysis.
package topology

import (
	"github.com/slidesmith/slidesmith/pkg/diagram"
)

// IsLinearFlow reports whether the diagram is a linear flow: no node has
// more than one outgoing edge. A diagram without edges is trivially linear.
func IsLinearFlow(d *diagram.Diagram) bool {
	if len(d.Edges) == 0 {
		return true
	}
	outgoing := make(map[string]int)
	for _, e := range d.Edges {
		outgoing[e.Source]++
		if outgoing[e.Source] > 1 {
			return false
		}
	}
	return true
}

// IsHierarchy reports whether the diagram is tree-like: exactly one root
// (a source that is never a target) and every node has at most one parent.
// A diagram without edges is not a hierarchy.
func IsHierarchy(d *diagram.Diagram) bool {
	if len(d.Edges) == 0 {
		return false
	}

	incoming := make(map[string]int)
	targets := make(map[string]bool)
	sources := make(map[string]bool)
	for _, e := range d.Edges {
		incoming[e.Target]++
		if incoming[e.Target] > 1 {
			return false
		}
		targets[e.Target] = true
		sources[e.Source] = true
	}

	roots := 0
	for s := range sources {
		if !targets[s] {
			roots++
		}
	}
	return roots == 1
}

// FlowOrder orders the diagram's nodes for a sequential flow layout.
// Nodes are visited breadth-first from the roots (nodes with no incoming
// edges) in declaration order; if no root exists the first declared node
// seeds the walk. Nodes unreachable from any seed are appended in
// declaration order.
func FlowOrder(d *diagram.Diagram) []diagram.Node {
	if len(d.Edges) == 0 {
		return d.Nodes
	}

	outgoing := make(map[string][]string)
	incoming := make(map[string]bool)
	for _, e := range d.Edges {
		outgoing[e.Source] = append(outgoing[e.Source], e.Target)
		incoming[e.Target] = true
	}

	var queue []string
	for _, n := range d.Nodes {
		if !incoming[n.ID] {
			queue = append(queue, n.ID)
		}
	}
	if len(queue) == 0 && len(d.Nodes) > 0 {
		queue = []string{d.Nodes[0].ID}
	}

	ordered := make([]diagram.Node, 0, len(d.Nodes))
	visited := make(map[string]bool)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		if n, ok := d.NodeByID(id); ok {
			ordered = append(ordered, n)
		}
		for _, target := range outgoing[id] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	for _, n := range d.Nodes {
		if !visited[n.ID] {
			ordered = append(ordered, n)
		}
	}
	return ordered
}

// Tree is an immutable parent/child view of a diagram. Children appear in
// edge declaration order.
type Tree struct {
	Node     diagram.Node
	Children []*Tree
}

// BuildTree builds a tree rooted at the first declared node that is never
// an edge target. Returns nil if the diagram has no nodes or no such root;
// callers fall back to a flow ordering in that case.
func BuildTree(d *diagram.Diagram) *Tree {
	if len(d.Nodes) == 0 {
		return nil
	}

	children := make(map[string][]string)
	targets := make(map[string]bool)
	for _, e := range d.Edges {
		children[e.Source] = append(children[e.Source], e.Target)
		targets[e.Target] = true
	}

	rootID := ""
	for _, n := range d.Nodes {
		if !targets[n.ID] {
			rootID = n.ID
			break
		}
	}
	if rootID == "" {
		return nil
	}

	return buildSubtree(d, rootID, children)
}

func buildSubtree(d *diagram.Diagram, id string, children map[string][]string) *Tree {
	node, ok := d.NodeByID(id)
	if !ok {
		node = diagram.Node{ID: id, Label: id, Shape: diagram.ShapeRectangle}
	}
	t := &Tree{Node: node}
	for _, childID := range children[id] {
		t.Children = append(t.Children, buildSubtree(d, childID, children))
	}
	return t
}
