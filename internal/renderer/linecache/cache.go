// Package linecache records how many glyphs each visible row holds before
// the caret, so backward redraw walks know where every row's content starts
// without rescanning the buffer from its beginning.
//
// Rows are laid out from logical line starts: a logical line of L glyphs
// occupies ceil(L/W) rows (one empty row when L is zero), every row but the
// last holding exactly W glyphs. The last row of a line holds between 1 and
// W glyphs, which is also the caret column convention of package cursor.
package linecache

import (
	"fmt"
	"iter"

	"github.com/dshills/typewriter/internal/engine/gapbuffer"
)

// Cache holds one length per visible row, indexed from the top.
// Entries are only meaningful between a Rebuild and the next edit that
// crosses a row boundary.
type Cache struct {
	width   int
	lengths []int

	caretRow int
	rebuilds uint64
}

// New creates a cache for a grid width columns wide and height rows tall.
func New(width, height int) *Cache {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("linecache: invalid grid %dx%d", width, height))
	}
	return &Cache{
		width:   width,
		lengths: make([]int, height),
	}
}

// Rebuild scans backward from the caret and records, for the caret's row and
// each row above it, how many glyphs that row holds before the caret.
// It stops at the buffer start or once every row above caretRow is filled.
// The returned value is the caret column on caretRow.
func (c *Cache) Rebuild(backward iter.Seq[gapbuffer.Code], caretRow int) int {
	if caretRow < 0 || caretRow >= len(c.lengths) {
		panic(fmt.Sprintf("linecache: caret row %d outside [0,%d)", caretRow, len(c.lengths)))
	}
	clear(c.lengths)
	c.caretRow = caretRow
	c.rebuilds++

	row := caretRow
	emit := func(lineLen int) bool {
		n, last := RowsFor(lineLen, c.width)
		for i := 0; i < n && row >= 0; i++ {
			if i == 0 {
				c.lengths[row] = last
			} else {
				c.lengths[row] = c.width
			}
			row--
		}
		return row >= 0
	}

	count := 0
	for code := range backward {
		if code != gapbuffer.Newline {
			count++
			continue
		}
		if !emit(count) {
			return c.lengths[caretRow]
		}
		count = 0
	}
	emit(count)
	return c.lengths[caretRow]
}

// Length returns the recorded length of a visible row.
func (c *Cache) Length(row int) int {
	if row < 0 || row >= len(c.lengths) {
		panic(fmt.Sprintf("linecache: row %d outside [0,%d)", row, len(c.lengths)))
	}
	return c.lengths[row]
}

// Lengths returns a copy of all row lengths, top row first.
func (c *Cache) Lengths() []int {
	out := make([]int, len(c.lengths))
	copy(out, c.lengths)
	return out
}

// CaretRow returns the caret row used by the last Rebuild.
func (c *Cache) CaretRow() int {
	return c.caretRow
}

// Rebuilds returns how many times the cache has been rebuilt.
func (c *Cache) Rebuilds() uint64 {
	return c.rebuilds
}

// RowsFor returns how many rows a logical line of lineLen glyphs occupies
// and how many glyphs its last row holds.
func RowsFor(lineLen, width int) (rows, last int) {
	if lineLen == 0 {
		return 1, 0
	}
	rows = (lineLen + width - 1) / width
	return rows, lineLen - (rows-1)*width
}

// CaretColumn scans backward to the start of the caret's logical line and
// returns the caret column on its row.
func CaretColumn(backward iter.Seq[gapbuffer.Code], width int) int {
	count := 0
	for code := range backward {
		if code == gapbuffer.Newline {
			break
		}
		count++
	}
	_, last := RowsFor(count, width)
	return last
}
