// Package memory is an in-memory backend.Presentation. It records every
// created shape as a plain struct, which makes it the reference backend
// for tests, the HTTP API's dry-run responses, and DOT export.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/slidesmith/slidesmith/pkg/backend"
	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/layout"
)

// ShapeRecord is one recorded create call.
type ShapeRecord struct {
	Handle backend.Handle      `json:"handle"`
	Kind   string              `json:"kind"` // shape glyph, "line", or "textbox"
	Bounds layout.Bounds       `json:"bounds"`
	Text   string              `json:"text,omitempty"`
	Line   *LineRecord         `json:"line,omitempty"`
	Shape  *backend.ShapeStyle `json:"shape_style,omitempty"`
	TextSt *backend.TextStyle  `json:"text_style,omitempty"`
}

// LineRecord holds connector endpoints and styling.
type LineRecord struct {
	X1    float64           `json:"x1"`
	Y1    float64           `json:"y1"`
	X2    float64           `json:"x2"`
	Y2    float64           `json:"y2"`
	Style backend.LineStyle `json:"style"`
}

// Slide records shapes in creation order.
type Slide struct {
	mu     sync.Mutex
	shapes []ShapeRecord
}

// Presentation is an in-memory slide deck.
type Presentation struct {
	mu     sync.Mutex
	slides []*Slide
	width  float64
	height float64
}

// New returns a presentation with one blank slide and the given dimensions.
func New(width, height float64) *Presentation {
	return &Presentation{
		slides: []*Slide{{}},
		width:  width,
		height: height,
	}
}

// NewStandard returns a presentation with standard 10x7.5in slides.
func NewStandard() *Presentation {
	return New(10.0, 7.5)
}

// Slide returns the slide at index.
func (p *Presentation) Slide(index int) (backend.Slide, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid slide index: %d", index)
	}
	return p.slides[index], nil
}

// AddSlide appends a blank slide and returns its index.
func (p *Presentation) AddSlide() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slides = append(p.slides, &Slide{})
	return len(p.slides) - 1, nil
}

// SlideCount reports the number of slides.
func (p *Presentation) SlideCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slides)
}

// SlideSize reports slide dimensions in inches.
func (p *Presentation) SlideSize() (float64, float64) {
	return p.width, p.height
}

// Shapes returns a copy of the slide's recorded shapes.
func (s *Slide) Shapes() []ShapeRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShapeRecord, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// ShapeCount reports the number of recorded shapes.
func (s *Slide) ShapeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shapes)
}

// CreateShape records a shape and returns its handle.
func (s *Slide) CreateShape(kind string, bounds layout.Bounds, text string, style backend.ShapeStyle) (backend.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := backend.Handle{ID: uuid.NewString(), Index: len(s.shapes)}
	s.shapes = append(s.shapes, ShapeRecord{
		Handle: h,
		Kind:   kind,
		Bounds: bounds,
		Text:   text,
		Shape:  &style,
	})
	return h, nil
}

// CreateLine records a connector and returns its handle.
func (s *Slide) CreateLine(x1, y1, x2, y2 float64, style backend.LineStyle) (backend.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := backend.Handle{ID: uuid.NewString(), Index: len(s.shapes)}
	s.shapes = append(s.shapes, ShapeRecord{
		Handle: h,
		Kind:   "line",
		Line:   &LineRecord{X1: x1, Y1: y1, X2: x2, Y2: y2, Style: style},
	})
	return h, nil
}

// CreateTextbox records a text frame and returns its handle.
func (s *Slide) CreateTextbox(bounds layout.Bounds, text string, style backend.TextStyle) (backend.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := backend.Handle{ID: uuid.NewString(), Index: len(s.shapes)}
	s.shapes = append(s.shapes, ShapeRecord{
		Handle: h,
		Kind:   "textbox",
		Bounds: bounds,
		Text:   text,
		TextSt: &style,
	})
	return h, nil
}
