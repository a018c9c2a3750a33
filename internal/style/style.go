// Package style defines colors and text attributes for rendered cells.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color is a terminal color: either the terminal default or a true color.
type Color struct {
	R, G, B uint8
	// Default indicates the terminal's own default color.
	Default bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack    = RGB(0, 0, 0)
	ColorWhite    = RGB(255, 255, 255)
	ColorGray     = RGB(128, 128, 128)
	ColorDarkGray = RGB(96, 96, 96)
	ColorRed      = RGB(224, 64, 64)
	ColorGreen    = RGB(64, 192, 96)
	ColorYellow   = RGB(224, 192, 64)
	ColorBlue     = RGB(96, 128, 240)
	ColorCyan     = RGB(64, 192, 208)
)

// RGB creates a true color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a "#RRGGBB" color string.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Hex returns the "#RRGGBB" form, or "default".
func (c Color) Hex() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// colorfulValue converts to a colorful.Color for color math.
func (c Color) colorfulValue() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lighten raises the perceptual lightness of the color by amount
// (0 to 1). Default colors are returned unchanged.
func (c Color) Lighten(amount float64) Color {
	if c.Default {
		return c
	}
	l, a, b := c.colorfulValue().Lab()
	l += amount
	if l > 1 {
		l = 1
	}
	r, g, bb := colorful.Lab(l, a, b).Clamped().RGB255()
	return RGB(r, g, bb)
}

// Darken lowers the perceptual lightness of the color by amount
// (0 to 1). Default colors are returned unchanged.
func (c Color) Darken(amount float64) Color {
	if c.Default {
		return c
	}
	l, a, b := c.colorfulValue().Lab()
	l -= amount
	if l < 0 {
		l = 0
	}
	r, g, bb := colorful.Lab(l, a, b).Clamped().RGB255()
	return RGB(r, g, bb)
}

// Style pairs foreground and background colors with text attributes.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// Default returns a style using the terminal's default colors.
func Default() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// Fg returns a copy with the foreground set.
func (s Style) Fg(c Color) Style {
	s.Foreground = c
	return s
}

// Bg returns a copy with the background set.
func (s Style) Bg(c Color) Style {
	s.Background = c
	return s
}

// Bold returns a copy with the bold attribute set.
func (s Style) Bold() Style {
	s.Attributes = s.Attributes.With(AttrBold)
	return s
}

// Dim returns a copy with the dim attribute set.
func (s Style) Dim() Style {
	s.Attributes = s.Attributes.With(AttrDim)
	return s
}

// Underline returns a copy with the underline attribute set.
func (s Style) Underline() Style {
	s.Attributes = s.Attributes.With(AttrUnderline)
	return s
}

// Reverse returns a copy with the reverse-video attribute set.
func (s Style) Reverse() Style {
	s.Attributes = s.Attributes.With(AttrReverse)
	return s
}
