package ops

import (
	"context"
	"fmt"

	"github.com/slidesmith/slidesmith/pkg/autofit"
	"github.com/slidesmith/slidesmith/pkg/backend"
	"github.com/slidesmith/slidesmith/pkg/layout"
)

// AutofitResult reports an auto-fit placement: the decision the engine
// made plus the textboxes created and any slides added for overflow.
type AutofitResult struct {
	Message        string           `json:"message"`
	SlideIndex     int              `json:"slide_index"`
	Strategy       autofit.Strategy `json:"strategy"`
	FontSize       int              `json:"font_size"`
	Columns        int              `json:"columns"`
	SlidesUsed     int              `json:"slides_used"`
	Recommendation string           `json:"recommendation"`
	Shapes         []ShapeRef       `json:"shapes"`
	NewSlides      []int            `json:"new_slides,omitempty"`
}

// AutoFitText fits text into the slide's content region and places the
// resulting textboxes. Multi-column results place one textbox per column;
// split results keep the first segment on the target slide and append a
// new slide per remaining segment. Placement is best-effort: slides and
// textboxes created before a failure are kept.
func AutoFitText(ctx context.Context, pres backend.Presentation, slideIndex int, text string, engine *autofit.Engine, strategy autofit.Strategy, preferredFontSize int, style backend.TextStyle, bounds *layout.Bounds) (*AutofitResult, error) {
	slide, err := slideAt(pres, slideIndex)
	if err != nil {
		return nil, err
	}

	region := targetBounds(pres, bounds)
	w, h := pres.SlideSize()
	container := autofit.Container{Width: region.Width, Height: region.Height, SlideWidth: w, SlideHeight: h}

	fit, err := engine.Fit(ctx, text, container, strategy, preferredFontSize)
	if err != nil {
		return nil, err
	}

	style.FontSize = fit.FontSize
	result := &AutofitResult{
		SlideIndex:     slideIndex,
		Strategy:       fit.Strategy,
		FontSize:       fit.FontSize,
		Columns:        fit.Columns,
		SlidesUsed:     1,
		Recommendation: fit.Recommendation,
	}

	switch fit.Strategy {
	case autofit.StrategyMultiColumn:
		err = placeColumns(slide, fit, region, style, result)
	case autofit.StrategySplitSlides:
		err = placeSlides(pres, slide, fit, region, style, result)
	default:
		err = placeSingle(slide, fit, region, style, result)
	}
	if err != nil {
		result.Message = fmt.Sprintf("Partial auto-fit: %d textboxes placed before failure", len(result.Shapes))
		return result, err
	}

	result.Message = fmt.Sprintf("Auto-fit placed %d textboxes using %s at %dpt", len(result.Shapes), fit.Strategy, fit.FontSize)
	return result, nil
}

func placeSingle(slide backend.Slide, fit *autofit.Result, region layout.Bounds, style backend.TextStyle, result *AutofitResult) error {
	h, err := slide.CreateTextbox(region, fit.TextSegments[0], style)
	if err != nil {
		return err
	}
	result.Shapes = append(result.Shapes, ShapeRef{Index: h.Index, Role: RoleText, Bounds: region})
	return nil
}

func placeColumns(slide backend.Slide, fit *autofit.Result, region layout.Bounds, style backend.TextStyle, result *AutofitResult) error {
	gap := (region.Width - float64(fit.Columns)*fit.ColumnWidth) / float64(max(fit.Columns-1, 1))
	for i, segment := range fit.TextSegments {
		b := layout.Bounds{
			Left:   region.Left + float64(i)*(fit.ColumnWidth+gap),
			Top:    region.Top,
			Width:  fit.ColumnWidth,
			Height: region.Height,
		}
		h, err := slide.CreateTextbox(b, segment, style)
		if err != nil {
			return err
		}
		result.Shapes = append(result.Shapes, ShapeRef{Index: h.Index, Role: RoleText, Bounds: b})
	}
	return nil
}

func placeSlides(pres backend.Presentation, first backend.Slide, fit *autofit.Result, region layout.Bounds, style backend.TextStyle, result *AutofitResult) error {
	target := first
	for i, segment := range fit.TextSegments {
		if i > 0 {
			idx, err := pres.AddSlide()
			if err != nil {
				return err
			}
			s, err := pres.Slide(idx)
			if err != nil {
				return err
			}
			result.NewSlides = append(result.NewSlides, idx)
			result.SlidesUsed++
			target = s
		}
		h, err := target.CreateTextbox(region, segment, style)
		if err != nil {
			return err
		}
		result.Shapes = append(result.Shapes, ShapeRef{Index: h.Index, Role: RoleText, Bounds: region})
	}
	return nil
}
