package layout

import (
	"context"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// ListResult is the computed geometry of a list layout.
type ListResult struct {
	Items     []Placed  `json:"items"`
	Direction Direction `json:"direction"`
}

// List arranges elements along one axis. The main axis is divided evenly
// among the items after subtracting gaps; items take 90% of the cross axis
// in vertical lists and 60% in horizontal ones, and the alignment places
// that shortfall. An empty element list is a LAYOUT_EMPTY error.
func List(ctx context.Context, bounds Bounds, elements []Element, dir Direction, gap float64, align Alignment) (*ListResult, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, "list", len(elements))
	start := time.Now()

	res, err := list(bounds, elements, dir, gap, align)
	hooks.OnLayoutComplete(ctx, "list", time.Since(start), err)
	return res, err
}

func list(bounds Bounds, elements []Element, dir Direction, gap float64, align Alignment) (*ListResult, error) {
	n := len(elements)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeLayoutEmpty, "no elements provided")
	}

	items := make([]Placed, 0, n)
	totalGaps := float64(n-1) * gap

	if dir == Vertical {
		itemHeight := (bounds.Height - totalGaps) / float64(n)
		itemWidth := bounds.Width * 0.9

		var hOffset float64
		switch align {
		case AlignCenter, AlignMiddle:
			hOffset = (bounds.Width - itemWidth) / 2
		case AlignRight:
			hOffset = bounds.Width - itemWidth
		default:
			hOffset = 0
		}

		for i, el := range elements {
			items = append(items, Placed{
				Element: el,
				Bounds: Bounds{
					Left:   bounds.Left + hOffset,
					Top:    bounds.Top + float64(i)*(itemHeight+gap),
					Width:  itemWidth,
					Height: itemHeight,
				},
			})
		}
	} else {
		itemWidth := (bounds.Width - totalGaps) / float64(n)
		itemHeight := bounds.Height * 0.6

		var vOffset float64
		switch align {
		case AlignMiddle, AlignCenter:
			vOffset = (bounds.Height - itemHeight) / 2
		case AlignBottom:
			vOffset = bounds.Height - itemHeight
		default:
			vOffset = 0
		}

		for i, el := range elements {
			items = append(items, Placed{
				Element: el,
				Bounds: Bounds{
					Left:   bounds.Left + float64(i)*(itemWidth+gap),
					Top:    bounds.Top + vOffset,
					Width:  itemWidth,
					Height: itemHeight,
				},
			})
		}
	}

	return &ListResult{Items: items, Direction: dir}, nil
}
