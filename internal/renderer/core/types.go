// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between the editor, renderer and backend.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// GlyphID identifies a glyph in the font table. Zero is the blank glyph.
type GlyphID uint16

// GlyphBlank is the glyph drawn to clear a cell.
const GlyphBlank GlyphID = 0

// Point is a cell coordinate on the character grid.
type Point struct {
	Col int
	Row int
}

// Pt is shorthand for Point{Col: col, Row: row}.
func Pt(col, row int) Point {
	return Point{Col: col, Row: row}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Size is the dimension of the character grid.
// Width is the number of printable columns, Height the number of rows.
type Size struct {
	Width  int
	Height int
}

// Contains reports whether p is a valid drawing cell.
func (s Size) Contains(p Point) bool {
	return p.Col >= 0 && p.Col < s.Width && p.Row >= 0 && p.Row < s.Height
}

// Cells returns Width*Height.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// Validate checks that both dimensions are at least 2.
func (s Size) Validate() error {
	if s.Width < 2 || s.Height < 2 {
		return fmt.Errorf("grid %dx%d: width and height must be at least 2", s.Width, s.Height)
	}
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// DrawCommand instructs the rendering collaborator to draw Glyph at Cell.
// A GlyphBlank glyph clears the cell.
type DrawCommand struct {
	Cell  Point
	Glyph GlyphID
}

func (c DrawCommand) String() string {
	return fmt.Sprintf("%s=%d", c.Cell, c.Glyph)
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// NewScreenRect creates a screen rectangle.
func NewScreenRect(top, left, bottom, right int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: bottom, Right: right}
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if p is within the rectangle.
func (r ScreenRect) Contains(p Point) bool {
	return p.Row >= r.Top && p.Row < r.Bottom &&
		p.Col >= r.Left && p.Col < r.Right
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle is the identity.
func (r ScreenRect) Union(other ScreenRect) ScreenRect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return ScreenRect{
		Top:    min(r.Top, other.Top),
		Left:   min(r.Left, other.Left),
		Bottom: max(r.Bottom, other.Bottom),
		Right:  max(r.Right, other.Right),
	}
}

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone    Attribute = 0
	AttrBold    Attribute = 1 << iota
	AttrDim               // Faint/dim text
	AttrReverse           // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color represents a color value.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a "#rgb" or "#rrggbb" string.
// The empty string and "default" yield ColorDefault.
func ColorFromHex(hex string) (Color, error) {
	if hex == "" || hex == "default" {
		return ColorDefault, nil
	}
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		rgb[i] = uint8(v)
	}
	return ColorFromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// IsDefault returns true if this is the default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style combines colors and attributes for a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns a style using the terminal defaults.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns a copy with the foreground set.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy with the background set.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a copy with the attributes replaced.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Cell is a rune with its style, as held by a display backend.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell returns a default-styled cell.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Style: DefaultStyle()}
}

// NewStyledCell returns a cell with the given style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Equals compares rune and style.
func (c Cell) Equals(other Cell) bool {
	return c == other
}
