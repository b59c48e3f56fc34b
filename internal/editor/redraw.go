package editor

import (
	"github.com/dshills/typewriter/internal/engine/gapbuffer"
	"github.com/dshills/typewriter/internal/renderer/core"
)

// relayout clears the grid and repaints it with the caret kept on its
// current row. The line cache is rebuilt first so the backward walk knows
// where every visible row starts.
func (e *Editor) relayout() {
	cur := e.cursor
	cur.ToLineStart()
	e.batch.BlankRows(0, e.size.Height)

	col := e.lines.Rebuild(e.buf.Backward(), cur.Row())
	cur.SetCol(col)

	e.paintBefore()
	if !e.buf.IsAtLogicalEnd() {
		e.paintAfter()
	}
	e.relaid = true
}

// paintBefore draws the glyphs before the caret, walking backward from the
// caret to the top row or the buffer start. The line cache must be current.
func (e *Editor) paintBefore() {
	cur := e.cursor
	cur.Save()
	defer cur.Restore()

	for code := range e.buf.Backward() {
		if code == gapbuffer.Newline {
			if !cur.AtLineStart() {
				e.violate("paint before", "line break reached at column %d", cur.Col())
			}
			if cur.IsFirstRow() {
				return
			}
			cur.ToPreviousRow()
			cur.SetCol(e.lines.Length(cur.Row()))
			continue
		}
		if cur.AtLineStart() {
			if cur.IsFirstRow() {
				return
			}
			if n := e.lines.Length(cur.Row() - 1); n != e.size.Width {
				e.violate("paint before", "wrapped row %d holds %d glyphs", cur.Row()-1, n)
			}
		}
		cur.RetreatSlot()
		e.batch.Draw(cur.Caret(), core.GlyphID(code))
	}
}

// paintAfter draws the glyphs after the caret, walking forward until the
// buffer or the grid runs out. The caret itself does not move.
func (e *Editor) paintAfter() {
	cur := e.cursor
	cur.Save()
	defer cur.Restore()

	for code := range e.buf.Forward() {
		if code == gapbuffer.Newline {
			if cur.IsLastRow() {
				return
			}
			cur.ToNextRow()
			cur.ToLineStart()
			continue
		}
		if cur.AtCanvasEnd() {
			return
		}
		e.batch.Draw(cur.DrawingSlot(), core.GlyphID(code))
		cur.Advance()
	}
}

// clearFromCaret blanks the caret row from the caret onward and every row
// below it.
func (e *Editor) clearFromCaret() {
	cur := e.cursor
	e.batch.BlankRow(cur.Row(), cur.Col())
	e.batch.BlankRows(cur.Row()+1, e.size.Height)
}
