package editor

import (
	"github.com/dshills/typewriter/internal/engine/gapbuffer"
	"github.com/dshills/typewriter/internal/renderer/core"
	"github.com/dshills/typewriter/internal/renderer/linecache"
)

func (e *Editor) typeGlyph(g core.GlyphID) error {
	if e.buf.IsFull() {
		return ErrBufferFull
	}
	e.buf.Insert(gapbuffer.Code(g))

	cur := e.cursor
	if cur.AtCanvasEnd() {
		e.relayout()
		return nil
	}
	slot := cur.DrawingSlot()
	e.batch.Blank(slot)
	e.batch.Draw(slot, g)
	cur.Advance()

	// A full last row hides the shifted tail, so nothing is left to repaint.
	if !e.buf.IsAtLogicalEnd() && !cur.AtCanvasEnd() {
		e.clearFromCaret()
		e.paintAfter()
	}
	return nil
}

func (e *Editor) enter() error {
	if e.buf.IsFull() {
		return ErrBufferFull
	}
	e.buf.Insert(gapbuffer.Newline)

	cur := e.cursor
	if cur.IsLastRow() {
		e.relayout()
		return nil
	}
	tail := !e.buf.IsAtLogicalEnd()
	if tail {
		e.clearFromCaret()
	}
	cur.ToNextRow()
	cur.ToLineStart()
	if tail {
		e.paintAfter()
	}
	return nil
}

func (e *Editor) backspace() error {
	if e.buf.IsEmpty() {
		return ErrAtStart
	}
	deleted, _ := e.buf.Before()
	e.buf.DeleteBackward()

	cur := e.cursor
	if e.buf.IsAtLogicalEnd() && cur.Col() > 0 {
		e.batch.Blank(core.Pt(cur.Col()-1, cur.Row()))
	}
	if e.moveBack("backspace", deleted) {
		return nil
	}
	if !e.buf.IsAtLogicalEnd() {
		e.clearFromCaret()
		e.paintAfter()
	}
	return nil
}

func (e *Editor) left() error {
	if e.buf.IsEmpty() {
		return ErrAtStart
	}
	passed, _ := e.buf.Before()
	e.buf.MoveCaretLeft()
	e.moveBack("left", passed)
	return nil
}

func (e *Editor) right() error {
	if e.buf.IsAtLogicalEnd() {
		return ErrAtEnd
	}
	passed, _ := e.buf.After()
	e.buf.MoveCaretRight()

	cur := e.cursor
	switch {
	case passed == gapbuffer.Newline:
		if cur.IsLastRow() {
			e.relayout()
			return nil
		}
		cur.ToNextRow()
		cur.ToLineStart()
	case cur.AtCanvasEnd():
		e.relayout()
	default:
		cur.Advance()
	}
	return nil
}

// moveBack moves the display cursor back over passed, which the buffer
// caret has already crossed. It reports whether a relayout repainted the
// grid.
func (e *Editor) moveBack(op string, passed gapbuffer.Code) bool {
	cur := e.cursor
	switch {
	case cur.AtLineStart():
		if passed != gapbuffer.Newline {
			e.violate(op, "caret at column 0 crossed glyph %d instead of a line break", passed)
		}
		col := 0
		if !e.buf.IsEmpty() {
			col = linecache.CaretColumn(e.buf.Backward(), e.size.Width)
		}
		return e.moveUp(col)

	case cur.Col() == 1:
		if passed == gapbuffer.Newline {
			e.violate(op, "line break found at column 1")
		}
		prev, ok := e.buf.Before()
		if !ok || prev == gapbuffer.Newline {
			cur.ToLineStart()
			return false
		}
		// The row continues a wrapped line: the caret belongs at the end of
		// the row above.
		return e.moveUp(e.size.Width)

	default:
		if passed == gapbuffer.Newline {
			e.violate(op, "line break found at column %d", cur.Col())
		}
		cur.Retreat()
		return false
	}
}

// moveUp places the caret at col on the previous row, relaying out when the
// caret is already on the top row.
func (e *Editor) moveUp(col int) bool {
	cur := e.cursor
	if cur.IsFirstRow() {
		e.relayout()
		return true
	}
	cur.ToPreviousRow()
	cur.SetCol(col)
	return false
}
