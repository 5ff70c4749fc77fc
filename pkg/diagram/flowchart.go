package diagram

import (
	"regexp"
	"strings"

	"github.com/slidesmith/slidesmith/pkg/errors"
)

// nodePatterns maps flow-DSL bracket pairs to shapes, in priority order.
// Order matters: several delimiters are prefixes of others ("[[" / "[",
// "([" / "(", "[/" / "["), so the first pattern that matches wins.
var nodePatterns = []struct {
	re    *regexp.Regexp
	shape Shape
}{
	{regexp.MustCompile(`^(\w+)\[\[([^\]]*)\]\]`), ShapeDatabase},    // A[[Database]]
	{regexp.MustCompile(`^(\w+)\(\(([^)]*)\)\)`), ShapeCircle},       // A((Circle))
	{regexp.MustCompile(`^(\w+)\(\[([^\]]*)\]\)`), ShapeStadium},     // A([Stadium])
	{regexp.MustCompile(`^(\w+)\{([^}]*)\}`), ShapeDiamond},          // A{Diamond}
	{regexp.MustCompile(`^(\w+)\[/([^/]*)/\]`), ShapeParallelogram},  // A[/Data/]
	{regexp.MustCompile(`^(\w+)\[\\([^\\]*)\\\]`), ShapeTrapezoid},   // A[\Trapezoid\]
	{regexp.MustCompile(`^(\w+)\[([^\]]*)\]`), ShapeRectangle},       // A[Rectangle]
	{regexp.MustCompile(`^(\w+)\(([^)]*)\)`), ShapeRoundedRectangle}, // A(Rounded)
}

var identRe = regexp.MustCompile(`^(\w+)`)

// ParseFlowchart parses flow-DSL (Mermaid-style) code into a Diagram.
//
// Recognized syntax:
//   - header: "graph TD" / "flowchart LR" (optional)
//   - node shapes: [], (), {}, (()), [[]], ([]), [//], [\\]
//   - connectors: -->, ---, -.->, -.-, ===>, each optionally |labeled|
//   - chains: A --> B --> C emits successive edges
//   - %% comments, subgraph/end lines: ignored
//
// A node id seen multiple times keeps its first shape and label.
func ParseFlowchart(code string) (*Diagram, error) {
	lines := contentLines(code)
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeParseEmpty, "empty diagram code")
	}

	first := strings.ToLower(lines[0])
	hasHeader := strings.HasPrefix(first, "graph ") || strings.HasPrefix(first, "flowchart ")

	dir := DirTopDown
	if hasHeader {
		dir = headerDirection(lines[0])
		lines = lines[1:]
	}

	nodes := newNodeSet()
	var edges []Edge

	for _, line := range lines {
		if strings.HasPrefix(line, "subgraph") || line == "end" {
			continue
		}
		edges = append(edges, parseEdgeLine(line, nodes)...)
	}

	return &Diagram{
		Type:      TypeFlowchart,
		Direction: dir,
		Nodes:     nodes.list(),
		Edges:     edges,
	}, nil
}

// contentLines strips blank and %%-comment lines and trims the rest.
func contentLines(code string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(code), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// headerDirection reads the direction from the header's trailing token.
// Unknown or absent tokens default to top-down.
func headerDirection(header string) Direction {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return DirTopDown
	}
	switch strings.ToUpper(fields[len(fields)-1]) {
	case "LR":
		return DirLeftRight
	case "RL":
		return DirRightLeft
	case "BT", "BU":
		return DirBottomUp
	default:
		return DirTopDown
	}
}

// parseEdgeLine parses a line that may contain connector tokens, including
// chains like "A --> B --> C". Text segments between adjacent tokens act as
// the target of one edge and the source of the next; an edge is emitted
// only when both its surrounding segments are non-empty. A line without
// any connector token declares a standalone node.
func parseEdgeLine(line string, nodes *nodeSet) []Edge {
	tokens := lexEdges(line)
	if len(tokens) == 0 {
		if line != "" {
			parseNodeRef(line, nodes)
		}
		return nil
	}

	var edges []Edge
	prevEnd := 0
	for i, tok := range tokens {
		source := strings.TrimSpace(line[prevEnd:tok.Start])

		targetEnd := len(line)
		if i+1 < len(tokens) {
			targetEnd = tokens[i+1].Start
		}
		target := strings.TrimSpace(line[tok.End:targetEnd])

		if source != "" && target != "" {
			sourceID := parseNodeRef(source, nodes)
			targetID := parseNodeRef(target, nodes)
			if sourceID != "" && targetID != "" {
				edges = append(edges, Edge{
					Source: sourceID,
					Target: targetID,
					Label:  tok.Label,
					Style:  tok.Style,
					Kind:   tok.Kind,
				})
			}
		}
		prevEnd = tok.End
	}
	return edges
}

// parseNodeRef parses a node reference like "A[Label]" or a bare "A",
// registers the node on first sight, and returns its id. A reference with
// no leading identifier is unparsable and returns "".
func parseNodeRef(s string, nodes *nodeSet) string {
	s = strings.TrimSpace(s)

	for _, p := range nodePatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		id := m[1]
		nodes.add(Node{ID: id, Label: strings.TrimSpace(m[2]), Shape: p.shape})
		return id
	}

	// Bare identifier: id doubles as the label.
	if m := identRe.FindStringSubmatch(s); m != nil {
		id := m[1]
		nodes.add(Node{ID: id, Label: id, Shape: ShapeRectangle})
		return id
	}

	return ""
}
