// Package theme maps semantic styling tags to concrete colors and fonts.
//
// Instead of requiring hard-coded RGB values or font names, callers use
// semantic tags like "accent", "critical", or "heading" that the active
// theme resolves to actual values. A Theme is an explicit value passed
// into layout and rendering calls; there is no ambient global resolver,
// which keeps differently-themed calls trivially parallelizable.
package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color as red/green/blue components in 0-255.
// It serializes to a JSON array, e.g. [79, 129, 189].
type RGB [3]uint8

// String returns the color as a #rrggbb hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Semantic color tags recognized by every theme.
const (
	ColorPrimary       = "primary"
	ColorSecondary     = "secondary"
	ColorAccent        = "accent"
	ColorSuccess       = "success"
	ColorWarning       = "warning"
	ColorCritical      = "critical"
	ColorInfo          = "info"
	ColorNeutral       = "neutral"
	ColorNeutralLight  = "neutral_light"
	ColorNeutralDark   = "neutral_dark"
	ColorText          = "text"
	ColorTextLight     = "text_light"
	ColorTextMuted     = "text_muted"
	ColorTextInverted  = "text_inverted"
	ColorBackground    = "background"
	ColorBackgroundAlt = "background_alt"
	ColorHighlight     = "highlight"
	ColorEmphasis      = "emphasis"
)

// Semantic font tags recognized by every theme.
const (
	FontTitle   = "title"
	FontHeading = "heading"
	FontBody    = "body"
	FontCaption = "caption"
	FontCode    = "code"
)

// Font describes a resolved font: name, size in points, and weight/style flags.
type Font struct {
	Name   string `json:"name" toml:"name"`
	Size   int    `json:"size" toml:"size"`
	Bold   bool   `json:"bold" toml:"bold"`
	Italic bool   `json:"italic" toml:"italic"`
}

// FontOverrides carries optional per-call overrides applied on top of a
// resolved font tag. Nil fields leave the theme value untouched.
type FontOverrides struct {
	Name   *string
	Size   *int
	Bold   *bool
	Italic *bool
}

// Theme is a complete semantic mapping: tag → color and tag → font.
// The zero value is not usable; start from Default or Load.
type Theme struct {
	Name   string
	Colors map[string]RGB
	Fonts  map[string]Font
}

// Default returns the built-in theme. Its values are chosen to look
// reasonable across presentation templates.
func Default() Theme {
	return Theme{
		Name: "default",
		Colors: map[string]RGB{
			ColorPrimary:   {79, 129, 189},
			ColorSecondary: {119, 147, 60},
			ColorAccent:    {128, 100, 162},

			ColorSuccess:  {0, 176, 80},
			ColorWarning:  {255, 192, 0},
			ColorCritical: {192, 0, 0},
			ColorInfo:     {0, 112, 192},

			ColorNeutral:      {127, 127, 127},
			ColorNeutralLight: {217, 217, 217},
			ColorNeutralDark:  {64, 64, 64},

			ColorText:         {0, 0, 0},
			ColorTextLight:    {64, 64, 64},
			ColorTextMuted:    {127, 127, 127},
			ColorTextInverted: {255, 255, 255},

			ColorBackground:    {255, 255, 255},
			ColorBackgroundAlt: {242, 242, 242},

			ColorHighlight: {255, 255, 0},
			ColorEmphasis:  {79, 129, 189},
		},
		Fonts: map[string]Font{
			FontTitle:   {Name: "Calibri Light", Size: 44},
			FontHeading: {Name: "Calibri", Size: 28, Bold: true},
			FontBody:    {Name: "Calibri", Size: 18},
			FontCaption: {Name: "Calibri", Size: 12, Italic: true},
			FontCode:    {Name: "Consolas", Size: 14},
		},
	}
}

// Color returns the RGB value for a semantic tag.
// Tag matching is case-insensitive.
func (t Theme) Color(tag string) (RGB, bool) {
	c, ok := t.Colors[strings.ToLower(strings.TrimSpace(tag))]
	return c, ok
}

// Font returns the font for a semantic tag.
// Tag matching is case-insensitive.
func (t Theme) Font(tag string) (Font, bool) {
	f, ok := t.Fonts[strings.ToLower(strings.TrimSpace(tag))]
	return f, ok
}

// ResolveColor resolves any color input to an RGB value:
//
//   - a semantic tag ("accent", "critical", ...)
//   - a hex string ("#4f81bd" or "4f81bd")
//   - a component triple ("79,129,189")
//
// Unknown tags and malformed values degrade to nil rather than erroring;
// callers substitute their defaults.
func (t Theme) ResolveColor(input string) *RGB {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}

	if c, ok := t.Color(s); ok {
		return &c
	}
	if c, ok := parseHex(s); ok {
		return &c
	}
	if c, ok := parseTriple(s); ok {
		return &c
	}
	return nil
}

// ResolveFont resolves a semantic font tag and applies overrides.
// An unknown tag falls back to the body font.
func (t Theme) ResolveFont(tag string, o FontOverrides) Font {
	f, ok := t.Font(tag)
	if !ok {
		f, _ = t.Font(FontBody)
	}
	if o.Name != nil {
		f.Name = *o.Name
	}
	if o.Size != nil {
		f.Size = *o.Size
	}
	if o.Bold != nil {
		f.Bold = *o.Bold
	}
	if o.Italic != nil {
		f.Italic = *o.Italic
	}
	return f
}

// Merge returns a copy of the theme with the other theme's entries laid
// over it. Tags absent from other keep their current values. This is how
// a partial theme file customizes the defaults.
func (t Theme) Merge(other Theme) Theme {
	out := Theme{
		Name:   t.Name,
		Colors: make(map[string]RGB, len(t.Colors)),
		Fonts:  make(map[string]Font, len(t.Fonts)),
	}
	if other.Name != "" {
		out.Name = other.Name
	}
	for k, v := range t.Colors {
		out.Colors[k] = v
	}
	for k, v := range other.Colors {
		out.Colors[k] = v
	}
	for k, v := range t.Fonts {
		out.Fonts[k] = v
	}
	for k, v := range other.Fonts {
		out.Fonts[k] = v
	}
	return out
}

func parseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

func parseTriple(s string) (RGB, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, false
	}
	var c RGB
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return RGB{}, false
		}
		c[i] = uint8(v)
	}
	return c, true
}
