// Package cursor provides the display cursor of the typewriter grid.
//
// A Position tracks one (column, row) pair over a fixed Width x Height grid
// and exposes it in two coordinate spaces:
//
//   - Caret space: column in [0, Width]. Column Width means the current row
//     is full and the next glyph will wrap; the row has not advanced yet.
//   - Drawing-slot space: column in [0, Width). Always a real cell.
//
// DrawingSlot is the single conversion from caret to slot. Positions never
// leave the grid; operations that would do so panic.
package cursor

import (
	"fmt"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Position is the display cursor. The zero value is not usable; use New.
type Position struct {
	size core.Size

	col, row int

	// single-slot backup used by redraw walks
	savedCol, savedRow int
}

// New creates a cursor at the top-left of a grid of the given size.
func New(size core.Size) *Position {
	if err := size.Validate(); err != nil {
		panic("cursor: " + err.Error())
	}
	return &Position{size: size}
}

// Size returns the grid dimensions.
func (p *Position) Size() core.Size {
	return p.size
}

// Col returns the caret column, in [0, Width].
func (p *Position) Col() int { return p.col }

// Row returns the row, in [0, Height).
func (p *Position) Row() int { return p.row }

// Caret returns the caret-space coordinate.
func (p *Position) Caret() core.Point {
	return core.Pt(p.col, p.row)
}

// DrawingSlot maps the caret to the cell the next glyph lands in.
// A caret at column Width maps to the start of the following row, so the
// caller must handle AtCanvasEnd before asking.
func (p *Position) DrawingSlot() core.Point {
	if p.col < p.size.Width {
		return core.Pt(p.col, p.row)
	}
	if p.IsLastRow() {
		panic(fmt.Sprintf("cursor: no drawing slot after %s: caret is at canvas end", p.Caret()))
	}
	return core.Pt(0, p.row+1)
}

// Advance moves the caret past a glyph placed at the drawing slot.
// From column Width the glyph lands at the start of the next row and the
// caret ends one past it. Past the last row the row wraps to zero.
func (p *Position) Advance() {
	if p.col < p.size.Width {
		p.col++
		return
	}
	p.col = 1
	p.row = (p.row + 1) % p.size.Height
}

// Retreat moves the caret one column back in caret space. From column zero
// it wraps to the end of the previous row (Width), and above the first row
// to the last row.
func (p *Position) Retreat() {
	if p.col > 0 {
		p.col--
		return
	}
	p.col = p.size.Width
	p.row = (p.row - 1 + p.size.Height) % p.size.Height
}

// RetreatSlot moves back one drawing slot. From column zero it wraps to the
// last real cell of the previous row (Width-1). Used when walking backwards
// over already typed glyphs.
func (p *Position) RetreatSlot() {
	if p.col > 0 {
		p.col--
		return
	}
	p.col = p.size.Width - 1
	p.row = (p.row - 1 + p.size.Height) % p.size.Height
}

// Save stores the current position in the backup slot.
func (p *Position) Save() {
	p.savedCol, p.savedRow = p.col, p.row
}

// Restore returns to the position stored by Save.
func (p *Position) Restore() {
	p.col, p.row = p.savedCol, p.savedRow
}

// ToLineStart moves to column zero of the current row.
func (p *Position) ToLineStart() {
	p.col = 0
}

// ToNextRow moves down one row, keeping the column.
func (p *Position) ToNextRow() {
	if p.IsLastRow() {
		panic(fmt.Sprintf("cursor: no row below %d", p.row))
	}
	p.row++
}

// ToPreviousRow moves up one row, keeping the column.
func (p *Position) ToPreviousRow() {
	if p.IsFirstRow() {
		panic("cursor: no row above 0")
	}
	p.row--
}

// SetCol places the caret at col on the current row.
func (p *Position) SetCol(col int) {
	if col < 0 || col > p.size.Width {
		panic(fmt.Sprintf("cursor: column %d outside [0,%d]", col, p.size.Width))
	}
	p.col = col
}

// AtCanvasStart reports whether the caret is at the top-left cell.
func (p *Position) AtCanvasStart() bool {
	return p.col == 0 && p.row == 0
}

// AtCanvasEnd reports whether the caret has no further legal position: the
// last row is full.
func (p *Position) AtCanvasEnd() bool {
	return p.col == p.size.Width && p.IsLastRow()
}

// AtLineStart reports whether the caret is at column zero.
func (p *Position) AtLineStart() bool {
	return p.col == 0
}

// AtLineEnd reports whether the current row is full.
func (p *Position) AtLineEnd() bool {
	return p.col == p.size.Width
}

// IsFirstRow reports whether the cursor is on row zero.
func (p *Position) IsFirstRow() bool {
	return p.row == 0
}

// IsLastRow reports whether the cursor is on the bottom row.
func (p *Position) IsLastRow() bool {
	return p.row == p.size.Height-1
}

func (p *Position) String() string {
	return fmt.Sprintf("caret(%d,%d) of %s", p.col, p.row, p.size)
}
