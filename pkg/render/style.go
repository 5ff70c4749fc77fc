package render

import (
	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/layout"
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// Style is the default visual styling for rendered diagram nodes and
// connectors. Node-level colors from the DSL override the defaults.
type Style struct {
	FillColor      *theme.RGB `json:"fill_color,omitempty"`
	TextColor      *theme.RGB `json:"text_color,omitempty"`
	LineColor      *theme.RGB `json:"line_color,omitempty"`
	ConnectorColor *theme.RGB `json:"connector_color,omitempty"`
	ConnectorWidth float64    `json:"connector_width"`
	FontName       string     `json:"font_name,omitempty"`
	FontSize       int        `json:"font_size"`
	Bold           bool       `json:"bold"`
}

// DefaultStyle derives diagram styling from a theme: primary fill,
// inverted text on the filled nodes, body font at 14pt.
func DefaultStyle(t theme.Theme) Style {
	fill, _ := t.Color(theme.ColorPrimary)
	text, _ := t.Color(theme.ColorTextInverted)
	line, _ := t.Color(theme.ColorText)
	connector, _ := t.Color(theme.ColorTextLight)
	body := t.ResolveFont(theme.FontBody, theme.FontOverrides{})

	return Style{
		FillColor:      &fill,
		TextColor:      &text,
		LineColor:      &line,
		ConnectorColor: &connector,
		ConnectorWidth: 1.5,
		FontName:       body.Name,
		FontSize:       14,
	}
}

// shapeGlyphs maps parsed node shapes to backend glyph names. Shapes the
// backend has no close glyph for degrade to simpler ones.
var shapeGlyphs = map[diagram.Shape]string{
	diagram.ShapeRectangle:        "rectangle",
	diagram.ShapeRoundedRectangle: "rounded_rectangle",
	diagram.ShapeDiamond:          "diamond",
	diagram.ShapeCircle:           "oval",
	diagram.ShapeStadium:          "rounded_rectangle",
	diagram.ShapeHexagon:          "hexagon",
	diagram.ShapeParallelogram:    "flowchart_data",
	diagram.ShapeTrapezoid:        "rectangle",
	diagram.ShapeDatabase:         "flowchart_document",
}

// NodeElement converts a diagram node to a layout element, applying the
// style defaults wherever the node has no color of its own.
func NodeElement(n diagram.Node, style Style) layout.Element {
	glyph, ok := shapeGlyphs[n.Shape]
	if !ok {
		glyph = "rounded_rectangle"
	}

	el := layout.Element{
		Kind:      layout.KindShape,
		Content:   n.Label,
		ShapeType: glyph,
		FontSize:  style.FontSize,
	}
	if style.Bold {
		b := true
		el.Bold = &b
	}
	if style.FontName != "" {
		el.FontName = style.FontName
	}

	el.FillColor = firstColor(n.FillColor, style.FillColor)
	el.TextColor = firstColor(n.TextColor, style.TextColor)
	el.LineColor = firstColor(n.LineColor, style.LineColor)
	return el
}

func firstColor(colors ...*theme.RGB) *theme.RGB {
	for _, c := range colors {
		if c != nil {
			return c
		}
	}
	return nil
}
