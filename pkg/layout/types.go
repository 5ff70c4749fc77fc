package layout

import (
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// Bounds is the rectangular region, in inches, a layout may place
// elements into.
type Bounds struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultBounds is the content region of a standard 10x7.5in slide with
// half-inch margins and room for a title.
func DefaultBounds() Bounds {
	return Bounds{Left: 0.5, Top: 1.0, Width: 9.0, Height: 5.5}
}

// BoundsFromSlide derives a content region from slide dimensions, leaving
// the given margin on all sides plus titleHeight at the top.
func BoundsFromSlide(slideWidth, slideHeight, margin, titleHeight float64) Bounds {
	return Bounds{
		Left:   margin,
		Top:    margin + titleHeight,
		Width:  slideWidth - 2*margin,
		Height: slideHeight - 2*margin - titleHeight,
	}
}

// Point is a position on the slide in inches.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Alignment positions items along a list's cross axis.
type Alignment string

// Alignments. Left/Center/Right apply to vertical lists, Top/Middle/Bottom
// to horizontal ones; Center and Middle are interchangeable.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignTop    Alignment = "top"
	AlignMiddle Alignment = "middle"
	AlignBottom Alignment = "bottom"
)

// Direction is the main axis of a list or flow layout.
type Direction string

// Layout directions.
const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// ElementKind discriminates the element variants a layout can place.
type ElementKind string

// Element kinds.
const (
	KindTextbox ElementKind = "textbox"
	KindShape   ElementKind = "shape"
)

// Element is one item to be placed by a layout. Kind selects the variant:
// a textbox carries only text, a shape additionally has a ShapeType glyph.
// Style fields are nil to inherit the layout's default style.
type Element struct {
	Kind      ElementKind `json:"kind"`
	Content   string      `json:"content"`
	ShapeType string      `json:"shape_type,omitempty"`
	FillColor *theme.RGB  `json:"fill_color,omitempty"`
	LineColor *theme.RGB  `json:"line_color,omitempty"`
	TextColor *theme.RGB  `json:"text_color,omitempty"`
	FontName  string      `json:"font_name,omitempty"`
	FontSize  int         `json:"font_size,omitempty"`
	Bold      *bool       `json:"bold,omitempty"`
	Alignment string      `json:"alignment,omitempty"`
}

// Textbox returns a textbox element with the given content.
func Textbox(content string) Element {
	return Element{Kind: KindTextbox, Content: content}
}

// ShapeOf returns a shape element with the given glyph and content.
func ShapeOf(shapeType, content string) Element {
	return Element{Kind: KindShape, Content: content, ShapeType: shapeType}
}

// Style is the default styling a layout applies to elements that do not
// override it.
type Style struct {
	FontName  string    `json:"font_name"`
	FontSize  int       `json:"font_size"`
	FillColor theme.RGB `json:"fill_color"`
	TextColor theme.RGB `json:"text_color"`
	LineColor theme.RGB `json:"line_color"`
}

// DefaultStyle derives layout defaults from a theme: body font, primary
// fill, plain text and lines.
func DefaultStyle(t theme.Theme) Style {
	body := t.ResolveFont(theme.FontBody, theme.FontOverrides{})
	text, _ := t.Color(theme.ColorText)
	fill, _ := t.Color(theme.ColorPrimary)
	return Style{
		FontName:  body.Name,
		FontSize:  body.Size,
		FillColor: fill,
		TextColor: text,
		LineColor: text,
	}
}

// Placed is an element with its computed position.
type Placed struct {
	Element Element `json:"element"`
	Bounds  Bounds  `json:"bounds"`
}

// ConnectorStyle selects how flow and hierarchy connectors are drawn.
type ConnectorStyle string

// Connector styles.
const (
	ConnectorArrow ConnectorStyle = "arrow"
	ConnectorLine  ConnectorStyle = "line"
	ConnectorNone  ConnectorStyle = "none"
)

// Connector is a computed link between two placed elements.
type Connector struct {
	From  Point          `json:"from"`
	To    Point          `json:"to"`
	Style ConnectorStyle `json:"style"`
}
