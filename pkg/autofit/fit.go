package autofit

import (
	"context"
	"fmt"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// Result is a fitting decision: what strategy was applied and the sizing
// and text segments to render with. Segments map one-to-one onto columns
// for multi-column results and onto slides for split-slide results;
// otherwise there is a single segment.
type Result struct {
	Strategy       Strategy `json:"strategy"`
	FontSize       int      `json:"font_size"`
	Columns        int      `json:"columns"`
	SlidesNeeded   int      `json:"slides_needed"`
	TextSegments   []string `json:"text_segments"`
	ColumnWidth    float64  `json:"column_width"`
	Recommendation string   `json:"recommendation"`
}

// ParseStrategy validates a strategy name. An empty name means smart.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyShrinkFont, StrategyMultiColumn, StrategySplitSlides, StrategySmart:
		return Strategy(s), nil
	case "":
		return StrategySmart, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown auto-fit strategy %q", s)
	}
}

// Fit decides how to fit text into the container. preferredFontSize of 0
// means the configured default. The smart strategy picks among the others;
// an explicit strategy is applied directly. Unknown strategies are an
// INVALID_STRATEGY error.
func (e *Engine) Fit(ctx context.Context, text string, c Container, strategy Strategy, preferredFontSize int) (*Result, error) {
	start := time.Now()
	m := e.Analyze(text)

	var res *Result
	switch strategy {
	case StrategySmart, "":
		res = e.smartFit(m, c, preferredFontSize)
	case StrategyShrinkFont:
		res = e.shrinkFontFit(m, c)
	case StrategyMultiColumn:
		res = e.multiColumnFit(m, c, preferredFontSize)
	case StrategySplitSlides:
		res = e.splitSlidesFit(m, c, preferredFontSize)
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown auto-fit strategy %q", strategy)
	}

	observability.Autofit().OnAutofit(ctx, string(res.Strategy), res.FontSize, res.Columns, res.SlidesNeeded, time.Since(start))
	return res, nil
}

// smartFit tries the mechanisms in order of least disruption: keep a
// single column at the best font size, shrink the font while it stays
// readable (>=12pt), distribute sectioned content over columns, and as a
// last resort split across slides.
func (e *Engine) smartFit(m TextMetrics, c Container, preferredFontSize int) *Result {
	baseFontSize := preferredFontSize
	if baseFontSize <= 0 {
		baseFontSize = e.cfg.DefaultFontSize
	}

	if e.EstimateLines(m.Text, c.Width, baseFontSize) <= e.cfg.MaxLinesPerSlide {
		optimal := e.OptimalFontSize(m, c, e.cfg.MaxLinesPerSlide)
		return &Result{
			Strategy:       StrategyShrinkFont,
			FontSize:       optimal,
			Columns:        1,
			SlidesNeeded:   1,
			TextSegments:   []string{m.Text},
			ColumnWidth:    c.Width,
			Recommendation: "Text fits well at optimal font size",
		}
	}

	reduced := e.OptimalFontSize(m, c, e.cfg.MaxLinesPerSlide)
	if reduced >= 12 && e.EstimateLines(m.Text, c.Width, reduced) <= e.cfg.MaxLinesPerSlide {
		return &Result{
			Strategy:       StrategyShrinkFont,
			FontSize:       reduced,
			Columns:        1,
			SlidesNeeded:   1,
			TextSegments:   []string{m.Text},
			ColumnWidth:    c.Width,
			Recommendation: fmt.Sprintf("Font reduced from %dpt to %dpt for readability", baseFontSize, reduced),
		}
	}

	if m.ParagraphCount > 1 || m.LineCount > 5 {
		if columns := e.OptimalColumns(m, c, baseFontSize); columns > 1 {
			columnWidth := (c.Width - float64(columns-1)*e.cfg.ColumnGap) / float64(columns)
			segments := e.SplitColumns(m.Text, columns)

			if e.maxSegmentLines(segments, columnWidth, baseFontSize) <= e.cfg.MaxLinesPerSlide {
				return &Result{
					Strategy:       StrategyMultiColumn,
					FontSize:       baseFontSize,
					Columns:        columns,
					SlidesNeeded:   1,
					TextSegments:   segments,
					ColumnWidth:    columnWidth,
					Recommendation: fmt.Sprintf("Content distributed across %d columns for better readability", columns),
				}
			}
		}
	}

	fontForSplit := reduced
	if floor := e.cfg.MinFontSize + 2; fontForSplit < floor {
		fontForSplit = floor
	}
	segments := e.SplitSlides(m.Text, c, fontForSplit, 0)

	return &Result{
		Strategy:       StrategySplitSlides,
		FontSize:       fontForSplit,
		Columns:        1,
		SlidesNeeded:   len(segments),
		TextSegments:   segments,
		ColumnWidth:    c.Width,
		Recommendation: fmt.Sprintf("Content split across %d slides for optimal readability", len(segments)),
	}
}

func (e *Engine) shrinkFontFit(m TextMetrics, c Container) *Result {
	optimal := e.OptimalFontSize(m, c, 0)
	return &Result{
		Strategy:       StrategyShrinkFont,
		FontSize:       optimal,
		Columns:        1,
		SlidesNeeded:   1,
		TextSegments:   []string{m.Text},
		ColumnWidth:    c.Width,
		Recommendation: fmt.Sprintf("Font size adjusted to %dpt", optimal),
	}
}

func (e *Engine) multiColumnFit(m TextMetrics, c Container, preferredFontSize int) *Result {
	baseFontSize := preferredFontSize
	if baseFontSize <= 0 {
		baseFontSize = e.cfg.DefaultFontSize
	}

	columns := e.OptimalColumns(m, c, baseFontSize)
	if columns == 1 {
		// This strategy always produces at least two columns.
		columns = 2
	}

	columnWidth := (c.Width - float64(columns-1)*e.cfg.ColumnGap) / float64(columns)
	segments := e.SplitColumns(m.Text, columns)

	return &Result{
		Strategy:       StrategyMultiColumn,
		FontSize:       baseFontSize,
		Columns:        columns,
		SlidesNeeded:   1,
		TextSegments:   segments,
		ColumnWidth:    columnWidth,
		Recommendation: fmt.Sprintf("Content arranged in %d columns", columns),
	}
}

func (e *Engine) splitSlidesFit(m TextMetrics, c Container, preferredFontSize int) *Result {
	fontSize := preferredFontSize
	if fontSize <= 0 {
		fontSize = e.cfg.DefaultFontSize
	}
	segments := e.SplitSlides(m.Text, c, fontSize, 0)

	return &Result{
		Strategy:       StrategySplitSlides,
		FontSize:       fontSize,
		Columns:        1,
		SlidesNeeded:   len(segments),
		TextSegments:   segments,
		ColumnWidth:    c.Width,
		Recommendation: fmt.Sprintf("Content split across %d slides", len(segments)),
	}
}
