package diagram

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// Activity-DSL fill colors for synthesized nodes.
var (
	activityStartFill    = theme.RGB{0, 176, 80}
	activityStopFill     = theme.RGB{192, 0, 0}
	activityDecisionFill = theme.RGB{255, 192, 0}
)

var (
	actionRe      = regexp.MustCompile(`^:([^;]+);`)
	ifThenRe      = regexp.MustCompile(`(?i)^if\s*\(([^)]+)\)\s*then\s*\(([^)]*)\)`)
	elseRe        = regexp.MustCompile(`(?i)^else\s*\(([^)]*)\)`)
	explicitArrow = regexp.MustCompile(`^(\w+)\s*(-+>+)\s*(\w+)`)
)

// ifFrame tracks an open if-block during activity parsing. The else marker
// id is reserved when an else branch is seen but carries no node or edge;
// only resetting the previous-node pointer to the decision gives the else
// branch its shape.
type ifFrame struct {
	decisionID string
	elseMarker string
}

// ParseActivity parses activity-DSL (PlantUML-style) code into a Diagram.
//
// Recognized statements, one per line:
//   - start / stop / end: terminal circles
//   - :action;            rounded action node, chained from the previous node
//   - if (cond) then (y)  diamond decision node, opens a branch
//   - else (n)            switches chaining back to the open decision
//   - endif               closes the innermost branch
//   - A --> B             explicit edge between named nodes
//
// @startuml/@enduml markers and unrecognized lines are skipped. The
// resulting diagram is always top-down.
func ParseActivity(code string) (*Diagram, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(code), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeParseEmpty, "empty diagram code")
	}

	nodes := newNodeSet()
	var edges []Edge

	prevID := ""
	counter := 0
	var ifStack []ifFrame

	for _, line := range lines {
		lower := strings.ToLower(line)

		switch lower {
		case "start":
			fill := activityStartFill
			nodes.put(Node{ID: "start", Label: "Start", Shape: ShapeCircle, FillColor: &fill})
			prevID = "start"
			continue
		case "stop", "end":
			fill := activityStopFill
			nodes.put(Node{ID: "stop", Label: "End", Shape: ShapeCircle, FillColor: &fill})
			if prevID != "" {
				edges = append(edges, Edge{Source: prevID, Target: "stop", Style: EdgeSolid, Kind: EdgeArrow})
			}
			prevID = "stop"
			continue
		case "endif":
			if len(ifStack) > 0 {
				ifStack = ifStack[:len(ifStack)-1]
			}
			continue
		}

		if m := actionRe.FindStringSubmatch(line); m != nil {
			counter++
			id := fmt.Sprintf("action_%d", counter)
			nodes.add(Node{ID: id, Label: strings.TrimSpace(m[1]), Shape: ShapeRoundedRectangle})
			if prevID != "" {
				edges = append(edges, Edge{Source: prevID, Target: id, Style: EdgeSolid, Kind: EdgeArrow})
			}
			prevID = id
			continue
		}

		if m := ifThenRe.FindStringSubmatch(line); m != nil {
			counter++
			id := fmt.Sprintf("decision_%d", counter)
			fill := activityDecisionFill
			nodes.add(Node{ID: id, Label: strings.TrimSpace(m[1]), Shape: ShapeDiamond, FillColor: &fill})
			if prevID != "" {
				edges = append(edges, Edge{Source: prevID, Target: id, Style: EdgeSolid, Kind: EdgeArrow})
			}
			ifStack = append(ifStack, ifFrame{decisionID: id})
			prevID = id
			continue
		}

		if elseRe.MatchString(line) {
			if len(ifStack) > 0 {
				counter++
				top := &ifStack[len(ifStack)-1]
				top.elseMarker = fmt.Sprintf("else_marker_%d", counter)
				// The next statement chains from the decision again. The
				// marker reserves the counter slot but emits nothing.
				prevID = top.decisionID
			}
			continue
		}

		if m := explicitArrow.FindStringSubmatch(line); m != nil {
			source, target := m[1], m[3]
			nodes.add(Node{ID: source, Label: source, Shape: ShapeRectangle})
			nodes.add(Node{ID: target, Label: target, Shape: ShapeRectangle})
			edges = append(edges, Edge{Source: source, Target: target, Style: EdgeSolid, Kind: EdgeArrow})
			prevID = target
			continue
		}
	}

	return &Diagram{
		Type:      TypeFlowchart,
		Direction: DirTopDown,
		Nodes:     nodes.list(),
		Edges:     edges,
	}, nil
}
