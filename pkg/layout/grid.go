package layout

import (
	"context"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// GridCell is one placed grid element with its row/column coordinates.
type GridCell struct {
	Placed
	Row int `json:"row"`
	Col int `json:"col"`
}

// GridResult is the computed geometry of a grid layout.
type GridResult struct {
	Cells    []GridCell `json:"cells"`
	Rows     int        `json:"rows"`
	Cols     int        `json:"cols"`
	Overflow int        `json:"overflow"`
}

// Grid arranges elements into a rows x cols grid filling the bounds.
// Cells share the bounds evenly after subtracting gaps; elements fill
// row-major. Excess elements beyond rows*cols are dropped and counted in
// Overflow rather than failing the layout. A grid whose cells would have
// non-positive size is a LAYOUT_BOUNDS error.
func Grid(ctx context.Context, bounds Bounds, elements []Element, rows, cols int, gap float64) (*GridResult, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, "grid", len(elements))
	start := time.Now()

	res, err := grid(bounds, elements, rows, cols, gap)
	hooks.OnLayoutComplete(ctx, "grid", time.Since(start), err)
	return res, err
}

func grid(bounds Bounds, elements []Element, rows, cols int, gap float64) (*GridResult, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeLayoutBounds, "grid needs at least 1 row and 1 column, got %dx%d", rows, cols)
	}

	cellWidth := (bounds.Width - float64(cols-1)*gap) / float64(cols)
	cellHeight := (bounds.Height - float64(rows-1)*gap) / float64(rows)
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, errors.New(errors.ErrCodeLayoutBounds,
			"grid %dx%d with gap %.2f does not fit in %.2fx%.2f bounds", rows, cols, gap, bounds.Width, bounds.Height)
	}

	capacity := rows * cols
	overflow := 0
	if len(elements) > capacity {
		overflow = len(elements) - capacity
		elements = elements[:capacity]
	}

	cells := make([]GridCell, 0, len(elements))
	for i, el := range elements {
		row := i / cols
		col := i % cols
		cells = append(cells, GridCell{
			Placed: Placed{
				Element: el,
				Bounds: Bounds{
					Left:   bounds.Left + float64(col)*(cellWidth+gap),
					Top:    bounds.Top + float64(row)*(cellHeight+gap),
					Width:  cellWidth,
					Height: cellHeight,
				},
			},
			Row: row,
			Col: col,
		})
	}

	return &GridResult{Cells: cells, Rows: rows, Cols: cols, Overflow: overflow}, nil
}
