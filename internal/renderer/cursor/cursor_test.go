package cursor

import (
	"testing"

	"github.com/dshills/typewriter/internal/renderer/core"
)

func newTestCursor() *Position {
	return New(core.Size{Width: 5, Height: 2})
}

func TestNew(t *testing.T) {
	p := newTestCursor()
	if !p.AtCanvasStart() {
		t.Errorf("new cursor at %s, want canvas start", p.Caret())
	}
	if !p.IsFirstRow() || p.IsLastRow() {
		t.Error("new cursor should be on the first row only")
	}
}

func TestNewInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with 1-wide grid should panic")
		}
	}()
	New(core.Size{Width: 1, Height: 4})
}

func TestAdvance(t *testing.T) {
	p := newTestCursor()
	for i := 0; i < 5; i++ {
		p.Advance()
	}

	if got := p.Caret(); got != core.Pt(5, 0) {
		t.Fatalf("after 5 advances caret = %s, want (5,0)", got)
	}
	if !p.AtLineEnd() {
		t.Error("caret should be at line end")
	}
	if got := p.DrawingSlot(); got != core.Pt(0, 1) {
		t.Errorf("DrawingSlot() = %s, want (0,1)", got)
	}

	p.Advance()
	if got := p.Caret(); got != core.Pt(1, 1) {
		t.Errorf("wrapped advance caret = %s, want (1,1)", got)
	}
}

func TestAdvanceWrapsRow(t *testing.T) {
	p := newTestCursor()
	for i := 0; i < 10; i++ {
		p.Advance()
	}
	if !p.AtCanvasEnd() {
		t.Fatalf("caret %s should be at canvas end", p.Caret())
	}
	p.Advance()
	if got := p.Caret(); got != core.Pt(1, 0) {
		t.Errorf("advance past last row = %s, want (1,0)", got)
	}
}

func TestDrawingSlotAtCanvasEndPanics(t *testing.T) {
	p := newTestCursor()
	p.ToNextRow()
	p.SetCol(5)

	defer func() {
		if recover() == nil {
			t.Error("DrawingSlot at canvas end should panic")
		}
	}()
	p.DrawingSlot()
}

func TestRetreat(t *testing.T) {
	p := newTestCursor()
	p.ToNextRow()
	p.SetCol(1)

	p.Retreat()
	if got := p.Caret(); got != core.Pt(0, 1) {
		t.Errorf("Retreat() = %s, want (0,1)", got)
	}
	p.Retreat()
	if got := p.Caret(); got != core.Pt(5, 0) {
		t.Errorf("Retreat() across row = %s, want (5,0)", got)
	}
}

func TestRetreatSlot(t *testing.T) {
	p := newTestCursor()
	p.ToNextRow()

	p.RetreatSlot()
	if got := p.Caret(); got != core.Pt(4, 0) {
		t.Errorf("RetreatSlot() across row = %s, want (4,0)", got)
	}

	p.SetCol(0)
	p.RetreatSlot()
	if got := p.Caret(); got != core.Pt(4, 1) {
		t.Errorf("RetreatSlot() above first row = %s, want (4,1)", got)
	}
}

func TestSaveRestore(t *testing.T) {
	p := newTestCursor()
	p.SetCol(3)
	p.Save()

	p.ToNextRow()
	p.ToLineStart()
	p.Advance()

	p.Restore()
	if got := p.Caret(); got != core.Pt(3, 0) {
		t.Errorf("Restore() = %s, want (3,0)", got)
	}
}

func TestRowMovesPanicAtEdges(t *testing.T) {
	tests := []struct {
		name string
		op   func(p *Position)
	}{
		{"previous from first", func(p *Position) { p.ToPreviousRow() }},
		{"next from last", func(p *Position) { p.ToNextRow(); p.ToNextRow() }},
		{"column too large", func(p *Position) { p.SetCol(6) }},
		{"negative column", func(p *Position) { p.SetCol(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", tt.name)
				}
			}()
			tt.op(newTestCursor())
		})
	}
}

func TestPredicates(t *testing.T) {
	p := newTestCursor()
	p.ToNextRow()
	p.SetCol(5)

	if !p.AtCanvasEnd() || !p.AtLineEnd() || !p.IsLastRow() {
		t.Errorf("caret %s: want canvas end, line end, last row", p.Caret())
	}
	if p.AtLineStart() || p.AtCanvasStart() {
		t.Errorf("caret %s: unexpected start predicate", p.Caret())
	}

	p.ToLineStart()
	if !p.AtLineStart() || p.AtCanvasStart() {
		t.Errorf("caret %s: want line start but not canvas start", p.Caret())
	}
}
