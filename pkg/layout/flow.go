package layout

import (
	"context"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// FlowResult is the computed geometry of a flow layout.
type FlowResult struct {
	Steps      []Placed    `json:"steps"`
	Connectors []Connector `json:"connectors,omitempty"`
	Direction  Direction   `json:"direction"`
}

// Flow arranges process steps along one axis with connectors between
// consecutive steps. Horizontal flows cap step width at 2.0in and height
// at half the bounds (max 1.5in), centered vertically; vertical flows cap
// height at 1.0in and width at 60% of the bounds (max 3.0in), centered
// horizontally. Textbox steps are promoted to rounded-rectangle shapes so
// a flow always reads as a process diagram. Connectors run from each
// step's trailing edge midpoint to the next step's leading edge midpoint.
// An empty step list is a LAYOUT_EMPTY error.
func Flow(ctx context.Context, bounds Bounds, steps []Element, dir Direction, gap float64, style ConnectorStyle) (*FlowResult, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, "flow", len(steps))
	start := time.Now()

	res, err := flow(bounds, steps, dir, gap, style)
	hooks.OnLayoutComplete(ctx, "flow", time.Since(start), err)
	return res, err
}

func flow(bounds Bounds, steps []Element, dir Direction, gap float64, style ConnectorStyle) (*FlowResult, error) {
	n := len(steps)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeLayoutEmpty, "no steps provided")
	}

	placed := make([]Placed, 0, n)
	totalGaps := float64(n-1) * gap

	if dir == Horizontal {
		stepWidth := min(2.0, (bounds.Width-totalGaps)/float64(n))
		stepHeight := min(1.5, bounds.Height*0.5)
		y := bounds.Top + (bounds.Height-stepHeight)/2

		for i, el := range steps {
			placed = append(placed, Placed{
				Element: flowStep(el),
				Bounds: Bounds{
					Left:   bounds.Left + float64(i)*(stepWidth+gap),
					Top:    y,
					Width:  stepWidth,
					Height: stepHeight,
				},
			})
		}
	} else {
		stepHeight := min(1.0, (bounds.Height-totalGaps)/float64(n))
		stepWidth := min(3.0, bounds.Width*0.6)
		x := bounds.Left + (bounds.Width-stepWidth)/2

		for i, el := range steps {
			placed = append(placed, Placed{
				Element: flowStep(el),
				Bounds: Bounds{
					Left:   x,
					Top:    bounds.Top + float64(i)*(stepHeight+gap),
					Width:  stepWidth,
					Height: stepHeight,
				},
			})
		}
	}

	var links []Connector
	if style != ConnectorNone && n > 1 {
		links = flowConnectors(placed, dir, style)
	}

	return &FlowResult{Steps: placed, Connectors: links, Direction: dir}, nil
}

// flowStep coerces a textbox into a rounded-rectangle shape.
func flowStep(el Element) Element {
	if el.Kind == KindTextbox {
		el.Kind = KindShape
		if el.ShapeType == "" {
			el.ShapeType = "rounded_rectangle"
		}
	}
	return el
}

func flowConnectors(placed []Placed, dir Direction, style ConnectorStyle) []Connector {
	links := make([]Connector, 0, len(placed)-1)
	for i := 0; i < len(placed)-1; i++ {
		a, b := placed[i].Bounds, placed[i+1].Bounds

		var from, to Point
		if dir == Horizontal {
			from = Point{X: a.Left + a.Width, Y: a.Top + a.Height/2}
			to = Point{X: b.Left, Y: b.Top + b.Height/2}
		} else {
			from = Point{X: a.Left + a.Width/2, Y: a.Top + a.Height}
			to = Point{X: b.Left + b.Width/2, Y: b.Top}
		}
		links = append(links, Connector{From: from, To: to, Style: style})
	}
	return links
}
