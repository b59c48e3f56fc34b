package dirty

import (
	"fmt"
	"slices"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Batch is the ordered list of draw commands for one input event.
// Later commands for a cell override earlier ones.
type Batch struct {
	size core.Size
	cmds []core.DrawCommand
}

// NewBatch creates an empty batch for a grid of the given size.
func NewBatch(size core.Size) *Batch {
	return &Batch{
		size: size,
		cmds: make([]core.DrawCommand, 0, size.Width*2),
	}
}

// Draw appends a command drawing glyph at p. Drawing outside the grid is a
// logic error and panics.
func (b *Batch) Draw(p core.Point, glyph core.GlyphID) {
	if !b.size.Contains(p) {
		panic(fmt.Sprintf("dirty: draw at %s outside %s grid", p, b.size))
	}
	b.cmds = append(b.cmds, core.DrawCommand{Cell: p, Glyph: glyph})
}

// Blank appends a command clearing p.
func (b *Batch) Blank(p core.Point) {
	b.Draw(p, core.GlyphBlank)
}

// BlankRow clears row from fromCol to the last column. A fromCol at or past
// the width clears nothing.
func (b *Batch) BlankRow(row, fromCol int) {
	for col := max(fromCol, 0); col < b.size.Width; col++ {
		b.Blank(core.Pt(col, row))
	}
}

// BlankRows clears every row in [fromRow, toRow).
func (b *Batch) BlankRows(fromRow, toRow int) {
	for row := max(fromRow, 0); row < min(toRow, b.size.Height); row++ {
		b.BlankRow(row, 0)
	}
}

// Len returns the number of commands recorded.
func (b *Batch) Len() int {
	return len(b.cmds)
}

// Commands returns a copy of the commands in emission order.
func (b *Batch) Commands() []core.DrawCommand {
	return slices.Clone(b.cmds)
}

// Compact returns the commands with overridden writes removed. Each cell
// keeps only its last command, in the position that command was emitted.
func (b *Batch) Compact() []core.DrawCommand {
	last := make(map[core.Point]int, len(b.cmds))
	for i, c := range b.cmds {
		last[c.Cell] = i
	}
	out := make([]core.DrawCommand, 0, len(last))
	for i, c := range b.cmds {
		if last[c.Cell] == i {
			out = append(out, c)
		}
	}
	return out
}

// Regions returns the touched cells as per-row column spans, ordered by row
// then column.
func (b *Batch) Regions() []Region {
	var regions []Region
	for _, c := range b.cmds {
		r := NewColumnRegion(c.Cell.Row, c.Cell.Col, c.Cell.Col+1)
		merged := false
		for i := range regions {
			if m, ok := regions[i].Merge(r); ok {
				regions[i] = m
				merged = true
				break
			}
		}
		if !merged {
			regions = append(regions, r)
		}
	}
	regions = coalesce(regions)
	slices.SortFunc(regions, func(a, b Region) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.StartCol - b.StartCol
	})
	return regions
}

// coalesce merges regions that became touching after later insertions.
func coalesce(regions []Region) []Region {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(regions) && !changed; i++ {
			for j := i + 1; j < len(regions); j++ {
				if m, ok := regions[i].Merge(regions[j]); ok {
					regions[i] = m
					regions = slices.Delete(regions, j, j+1)
					changed = true
					break
				}
			}
		}
	}
	return regions
}

// Bounds returns the smallest rectangle containing every touched cell.
func (b *Batch) Bounds() core.ScreenRect {
	var rect core.ScreenRect
	for _, c := range b.cmds {
		rect = rect.Union(core.RectFromSize(c.Cell.Row, c.Cell.Col, 1, 1))
	}
	return rect
}

// Reset empties the batch, keeping its storage.
func (b *Batch) Reset() {
	b.cmds = b.cmds[:0]
}
