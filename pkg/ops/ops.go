// Package ops is the operation layer: it runs the parsing, layout, and
// fitting engines against a presentation backend and reports what was
// created. Operations are best-effort and additive: shapes already placed
// are not rolled back when a later step fails.
package ops

import (
	"github.com/slidesmith/slidesmith/pkg/backend"
	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/layout"
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// ShapeRef describes one created shape: its index on the slide, its role
// in the operation, and its geometry.
type ShapeRef struct {
	Index  int           `json:"index"`
	Role   string        `json:"role"`
	Bounds layout.Bounds `json:"bounds"`
}

// Shape roles.
const (
	RoleNode      = "node"
	RoleCell      = "cell"
	RoleItem      = "item"
	RoleStep      = "step"
	RoleConnector = "connector"
	RoleText      = "text"
)

// targetBounds resolves the layout region: explicit bounds win, otherwise
// the presentation's slide size with standard margins.
func targetBounds(pres backend.Presentation, bounds *layout.Bounds) layout.Bounds {
	if bounds != nil {
		return *bounds
	}
	w, h := pres.SlideSize()
	return layout.BoundsFromSlide(w, h, 0.5, 1.0)
}

// slideAt fetches a slide, tagging range errors as invalid input.
func slideAt(pres backend.Presentation, index int) (backend.Slide, error) {
	s, err := pres.Slide(index)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "slide %d", index)
	}
	return s, nil
}

// placeElement creates a shape or textbox for a placed layout element and
// returns its handle.
func placeElement(slide backend.Slide, p layout.Placed, defaults layout.Style) (backend.Handle, error) {
	el := p.Element

	if el.Kind == layout.KindShape {
		style := backend.ShapeStyle{
			FillColor: orColor(el.FillColor, defaults.FillColor),
			LineColor: orColor(el.LineColor, defaults.LineColor),
			TextColor: orColor(el.TextColor, defaults.TextColor),
			FontName:  orString(el.FontName, defaults.FontName),
			FontSize:  orInt(el.FontSize, defaults.FontSize),
			Alignment: el.Alignment,
		}
		if el.Bold != nil {
			style.Bold = *el.Bold
		}
		return slide.CreateShape(el.ShapeType, p.Bounds, el.Content, style)
	}

	style := backend.TextStyle{
		FontName:  orString(el.FontName, defaults.FontName),
		FontSize:  orInt(el.FontSize, defaults.FontSize),
		Color:     orColor(el.TextColor, defaults.TextColor),
		Alignment: el.Alignment,
	}
	if el.Bold != nil {
		style.Bold = *el.Bold
	}
	return slide.CreateTextbox(p.Bounds, el.Content, style)
}

// placeConnectors draws the computed connectors onto the slide and returns
// their shape references. Failures are returned with whatever was already
// placed.
func placeConnectors(slide backend.Slide, connectors []layout.Connector, color *theme.RGB, width float64) ([]ShapeRef, error) {
	refs := make([]ShapeRef, 0, len(connectors))
	for _, c := range connectors {
		h, err := slide.CreateLine(c.From.X, c.From.Y, c.To.X, c.To.Y, backend.LineStyle{
			Color: color,
			Width: width,
			Arrow: c.Style == layout.ConnectorArrow,
		})
		if err != nil {
			return refs, err
		}
		refs = append(refs, ShapeRef{Index: h.Index, Role: RoleConnector, Bounds: layout.Bounds{
			Left:   c.From.X,
			Top:    c.From.Y,
			Width:  c.To.X - c.From.X,
			Height: c.To.Y - c.From.Y,
		}})
	}
	return refs, nil
}

func orColor(c *theme.RGB, fallback theme.RGB) *theme.RGB {
	if c != nil {
		return c
	}
	return &fallback
}

func orString(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func orInt(n, fallback int) int {
	if n != 0 {
		return n
	}
	return fallback
}
