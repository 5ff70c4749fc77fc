// Package autofit decides how long text fits onto slides.
//
// The engine estimates line counts from character-per-inch heuristics (no
// font rasterization) and picks between three mechanisms: shrinking the
// font, splitting into columns, and splitting across slides. The smart
// strategy tries them in that order. All decisions are pure: the engine
// returns text segments and sizing, never touches a presentation.
package autofit

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Strategy selects the fitting mechanism.
type Strategy string

// Fitting strategies.
const (
	StrategyShrinkFont  Strategy = "shrink_font"
	StrategyMultiColumn Strategy = "multi_column"
	StrategySplitSlides Strategy = "split_slides"
	StrategySmart       Strategy = "smart"
)

// Config tunes the auto-fit heuristics. The character-per-inch estimate is
// calibrated for the default font size and scaled linearly for others.
type Config struct {
	MinFontSize        int     `json:"min_font_size" toml:"min_font_size"`
	MaxFontSize        int     `json:"max_font_size" toml:"max_font_size"`
	DefaultFontSize    int     `json:"default_font_size" toml:"default_font_size"`
	TargetCharsPerLine int     `json:"target_chars_per_line" toml:"target_chars_per_line"`
	MaxLinesPerSlide   int     `json:"max_lines_per_slide" toml:"max_lines_per_slide"`
	ColumnGap          float64 `json:"column_gap" toml:"column_gap"`
	MinColumnWidth     float64 `json:"min_column_width" toml:"min_column_width"`
	BulletIndent       float64 `json:"bullet_indent" toml:"bullet_indent"`
	CharsPerInch       float64 `json:"chars_per_inch" toml:"chars_per_inch"`
	PointsPerInch      float64 `json:"points_per_inch" toml:"points_per_inch"`
	StackingGap        float64 `json:"stacking_gap" toml:"stacking_gap"`
}

// DefaultConfig returns the tuning used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MinFontSize:        10,
		MaxFontSize:        44,
		DefaultFontSize:    18,
		TargetCharsPerLine: 50,
		MaxLinesPerSlide:   12,
		ColumnGap:          0.3,
		MinColumnWidth:     2.0,
		BulletIndent:       0.25,
		CharsPerInch:       7.0,
		PointsPerInch:      72.0,
		StackingGap:        0.2,
	}
}

// Container is the text container being filled, in inches.
type Container struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	SlideWidth  float64 `json:"slide_width"`
	SlideHeight float64 `json:"slide_height"`
}

// DefaultContainer is a full-width content container on a standard slide.
func DefaultContainer(width, height float64) Container {
	return Container{Width: width, Height: height, SlideWidth: 10.0, SlideHeight: 7.5}
}

// TextMetrics summarizes text content for fitting decisions.
type TextMetrics struct {
	Text           string  `json:"-"`
	CharCount      int     `json:"char_count"`
	WordCount      int     `json:"word_count"`
	LineCount      int     `json:"line_count"`
	ParagraphCount int     `json:"paragraph_count"`
	AvgWordLength  float64 `json:"avg_word_length"`
	HasBullets     bool    `json:"has_bullets"`
	HasNewlines    bool    `json:"has_newlines"`
}

// Engine computes text fitting decisions from a Config.
type Engine struct {
	cfg Config
}

// New returns an engine with the given config.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// NewDefault returns an engine with DefaultConfig.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

var bulletPrefixes = []string{"•", "-", "*", "●", "○", "▪", "▸"}

// Analyze extracts content metrics from text. A text without blank-line
// separators counts as a single paragraph.
func (e *Engine) Analyze(text string) TextMetrics {
	lines := strings.Split(text, "\n")
	words := strings.Fields(text)

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	if paragraphs == 0 {
		paragraphs = 1
	}

	hasBullets := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(trimmed, prefix) {
				hasBullets = true
				break
			}
		}
		if hasBullets {
			break
		}
	}

	totalWordLen := 0
	for _, w := range words {
		totalWordLen += utf8.RuneCountInString(w)
	}
	avgWordLen := 0.0
	if len(words) > 0 {
		avgWordLen = float64(totalWordLen) / float64(len(words))
	}

	return TextMetrics{
		Text:           text,
		CharCount:      utf8.RuneCountInString(text),
		WordCount:      len(words),
		LineCount:      len(lines),
		ParagraphCount: paragraphs,
		AvgWordLength:  avgWordLen,
		HasBullets:     hasBullets,
		HasNewlines:    strings.Contains(text, "\n"),
	}
}

// EstimateLines estimates the lines needed to render text in a container of
// the given width at the given font size. The per-inch character density is
// scaled by defaultSize/fontSize, so larger fonts wrap sooner. Every
// explicit line contributes at least one rendered line; blank lines count
// as one. A non-positive font size falls back to the default.
func (e *Engine) EstimateLines(text string, containerWidth float64, fontSize int) int {
	if fontSize <= 0 {
		fontSize = e.cfg.DefaultFontSize
	}

	scale := float64(e.cfg.DefaultFontSize) / float64(fontSize)
	charsPerLine := int(containerWidth * e.cfg.CharsPerInch * scale)
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	total := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			total++
			continue
		}
		wrapped := int(math.Ceil(float64(utf8.RuneCountInString(line)) / float64(charsPerLine)))
		if wrapped < 1 {
			wrapped = 1
		}
		total += wrapped
	}
	return total
}

// OptimalFontSize finds the largest font size whose estimated line count
// stays within targetLines, hill-climbing from the default: growing in 2pt
// steps while the text still fits, or shrinking in 1pt steps until it fits
// or the minimum is reached. A non-positive targetLines uses the per-slide
// line budget.
func (e *Engine) OptimalFontSize(m TextMetrics, c Container, targetLines int) int {
	if targetLines <= 0 {
		targetLines = e.cfg.MaxLinesPerSlide
	}

	fontSize := e.cfg.DefaultFontSize
	lines := e.EstimateLines(m.Text, c.Width, fontSize)

	if lines <= targetLines {
		for fontSize < e.cfg.MaxFontSize {
			test := fontSize + 2
			if e.EstimateLines(m.Text, c.Width, test) <= targetLines {
				fontSize = test
			} else {
				break
			}
		}
		return fontSize
	}

	for fontSize > e.cfg.MinFontSize && lines > targetLines {
		fontSize--
		lines = e.EstimateLines(m.Text, c.Width, fontSize)
	}
	return fontSize
}

// OptimalColumns picks a column count (1-3) for the content at the given
// font size. A single column wins if the text already fits; otherwise two
// and three columns are trialed by actually splitting the text and
// measuring the worst column. When nothing fits outright, two columns win
// if their width stays above the minimum, else one.
func (e *Engine) OptimalColumns(m TextMetrics, c Container, fontSize int) int {
	if e.EstimateLines(m.Text, c.Width, fontSize) <= e.cfg.MaxLinesPerSlide {
		return 1
	}

	col2Width := (c.Width - e.cfg.ColumnGap) / 2
	if col2Width >= e.cfg.MinColumnWidth {
		if e.maxSegmentLines(e.SplitColumns(m.Text, 2), col2Width, fontSize) <= e.cfg.MaxLinesPerSlide {
			return 2
		}
	}

	col3Width := (c.Width - 2*e.cfg.ColumnGap) / 3
	if col3Width >= e.cfg.MinColumnWidth {
		if e.maxSegmentLines(e.SplitColumns(m.Text, 3), col3Width, fontSize) <= e.cfg.MaxLinesPerSlide {
			return 3
		}
	}

	if col2Width >= e.cfg.MinColumnWidth {
		return 2
	}
	return 1
}

func (e *Engine) maxSegmentLines(segments []string, width float64, fontSize int) int {
	most := 0
	for _, seg := range segments {
		if n := e.EstimateLines(seg, width, fontSize); n > most {
			most = n
		}
	}
	return most
}
