// Package backend defines the presentation backend the placement layer
// writes into. The core never owns a presentation: layouts produce
// geometry, and an implementation of these interfaces turns geometry into
// shapes. Implementations are not required to be safe for concurrent
// mutation of the same presentation; callers serialize writes per target.
package backend

import (
	"github.com/slidesmith/slidesmith/pkg/layout"
	"github.com/slidesmith/slidesmith/pkg/theme"
)

// Handle identifies a created shape: a stable unique id plus the shape's
// index in its slide's shape list at creation time.
type Handle struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
}

// ShapeStyle is the visual styling for a created shape.
type ShapeStyle struct {
	FillColor *theme.RGB `json:"fill_color,omitempty"`
	LineColor *theme.RGB `json:"line_color,omitempty"`
	TextColor *theme.RGB `json:"text_color,omitempty"`
	FontName  string     `json:"font_name,omitempty"`
	FontSize  int        `json:"font_size,omitempty"`
	Bold      bool       `json:"bold,omitempty"`
	Alignment string     `json:"alignment,omitempty"`
}

// LineStyle is the styling for a created connector line.
type LineStyle struct {
	Color *theme.RGB `json:"color,omitempty"`
	Width float64    `json:"width,omitempty"`
	Arrow bool       `json:"arrow,omitempty"`
}

// TextStyle is the styling for a created textbox.
type TextStyle struct {
	FontName  string     `json:"font_name,omitempty"`
	FontSize  int        `json:"font_size,omitempty"`
	Bold      bool       `json:"bold,omitempty"`
	Italic    bool       `json:"italic,omitempty"`
	Color     *theme.RGB `json:"color,omitempty"`
	Alignment string     `json:"alignment,omitempty"`
}

// Slide creates shapes on one slide.
type Slide interface {
	// CreateShape places a shape of the given kind (backend glyph name,
	// e.g. "rounded_rectangle") with text content.
	CreateShape(kind string, bounds layout.Bounds, text string, style ShapeStyle) (Handle, error)

	// CreateLine places a straight connector between two points, in inches.
	CreateLine(x1, y1, x2, y2 float64, style LineStyle) (Handle, error)

	// CreateTextbox places a plain text frame.
	CreateTextbox(bounds layout.Bounds, text string, style TextStyle) (Handle, error)

	// ShapeCount reports the number of shapes currently on the slide.
	ShapeCount() int
}

// Presentation owns slides and their dimensions.
type Presentation interface {
	// Slide returns the slide at index; out-of-range indexes are an error.
	Slide(index int) (Slide, error)

	// AddSlide appends a blank slide and returns its index.
	AddSlide() (int, error)

	// SlideCount reports the number of slides.
	SlideCount() int

	// SlideSize reports slide dimensions in inches.
	SlideSize() (width, height float64)
}
