// Package font maps characters to glyph identifiers and renders glyphs to
// pixels. It is backed by the fixed 7x13 face of golang.org/x/image.
//
// Glyph identifiers are indices into the face's glyph ranges, so the space
// character is glyph zero: the blank glyph of the renderer.
package font

import (
	"golang.org/x/image/font/basicfont"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Table is the character to glyph identifier mapping.
type Table struct {
	face *basicfont.Face
	size int
}

// NewTable creates a table over the 7x13 face.
func NewTable() *Table {
	return NewTableFromFace(basicfont.Face7x13)
}

// NewTableFromFace creates a table over any basicfont face.
func NewTableFromFace(face *basicfont.Face) *Table {
	size := 0
	for _, rg := range face.Ranges {
		size = max(size, rg.Offset+int(rg.High-rg.Low))
	}
	return &Table{face: face, size: size}
}

// Face returns the underlying face.
func (t *Table) Face() *basicfont.Face {
	return t.face
}

// Len returns the number of glyphs.
func (t *Table) Len() int {
	return t.size
}

// Glyph returns the identifier for r, or false if the face has no glyph.
func (t *Table) Glyph(r rune) (core.GlyphID, bool) {
	for _, rg := range t.face.Ranges {
		if r >= rg.Low && r < rg.High {
			return core.GlyphID(rg.Offset + int(r-rg.Low)), true
		}
	}
	return 0, false
}

// Rune returns the character drawn by glyph id.
func (t *Table) Rune(id core.GlyphID) (rune, bool) {
	for _, rg := range t.face.Ranges {
		span := int(rg.High - rg.Low)
		if int(id) >= rg.Offset && int(id) < rg.Offset+span {
			return rg.Low + rune(int(id)-rg.Offset), true
		}
	}
	return 0, false
}

// Printable reports whether r is a character the typewriter can type.
func (t *Table) Printable(r rune) bool {
	if r < ' ' || r == 0x7f {
		return false
	}
	_, ok := t.Glyph(r)
	return ok
}
