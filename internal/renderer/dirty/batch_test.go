package dirty

import (
	"slices"
	"testing"

	"github.com/dshills/typewriter/internal/renderer/core"
)

func newTestBatch() *Batch {
	return NewBatch(core.Size{Width: 5, Height: 3})
}

func TestBatchDraw(t *testing.T) {
	b := newTestBatch()
	b.Draw(core.Pt(1, 1), 7)
	b.Blank(core.Pt(2, 1))

	want := []core.DrawCommand{
		{Cell: core.Pt(1, 1), Glyph: 7},
		{Cell: core.Pt(2, 1), Glyph: core.GlyphBlank},
	}
	if got := b.Commands(); !slices.Equal(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}
}

func TestBatchDrawOutsideGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Draw outside grid should panic")
		}
	}()
	newTestBatch().Draw(core.Pt(5, 0), 1)
}

func TestBatchBlankRow(t *testing.T) {
	b := newTestBatch()
	b.BlankRow(2, 3)
	if b.Len() != 2 {
		t.Errorf("BlankRow(2, 3) emitted %d commands, want 2", b.Len())
	}

	b.Reset()
	b.BlankRow(0, 5)
	if b.Len() != 0 {
		t.Errorf("BlankRow past width emitted %d commands", b.Len())
	}
}

func TestBatchBlankRows(t *testing.T) {
	b := newTestBatch()
	b.BlankRows(1, 10)
	if b.Len() != 10 {
		t.Errorf("BlankRows(1, 10) emitted %d commands, want 10", b.Len())
	}
}

func TestBatchCompact(t *testing.T) {
	b := newTestBatch()
	b.Blank(core.Pt(0, 0))
	b.Draw(core.Pt(1, 0), 3)
	b.Draw(core.Pt(0, 0), 9)

	want := []core.DrawCommand{
		{Cell: core.Pt(1, 0), Glyph: 3},
		{Cell: core.Pt(0, 0), Glyph: 9},
	}
	if got := b.Compact(); !slices.Equal(got, want) {
		t.Errorf("Compact() = %v, want %v", got, want)
	}
}

func TestBatchRegions(t *testing.T) {
	b := newTestBatch()
	b.Draw(core.Pt(3, 2), 1)
	b.Draw(core.Pt(0, 0), 1)
	b.Draw(core.Pt(2, 0), 1)
	b.Draw(core.Pt(1, 0), 1)

	want := []Region{
		{Row: 0, StartCol: 0, EndCol: 3},
		{Row: 2, StartCol: 3, EndCol: 4},
	}
	if got := b.Regions(); !slices.Equal(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}
}

func TestBatchBounds(t *testing.T) {
	b := newTestBatch()
	if !b.Bounds().IsEmpty() {
		t.Error("empty batch should have empty bounds")
	}

	b.Draw(core.Pt(1, 2), 1)
	b.Draw(core.Pt(3, 0), 1)

	want := core.NewScreenRect(0, 1, 3, 4)
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestRegionMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b Region
		want Region
		ok   bool
	}{
		{"overlap", NewColumnRegion(0, 0, 3), NewColumnRegion(0, 2, 5), NewColumnRegion(0, 0, 5), true},
		{"touching", NewColumnRegion(1, 0, 2), NewColumnRegion(1, 2, 3), NewColumnRegion(1, 0, 3), true},
		{"gap", NewColumnRegion(1, 0, 1), NewColumnRegion(1, 2, 3), Region{}, false},
		{"different rows", NewColumnRegion(0, 0, 2), NewColumnRegion(1, 0, 2), Region{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Merge(tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Merge() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRegionBasics(t *testing.T) {
	r := NewColumnRegion(2, 4, 1)
	if r.StartCol != 1 || r.EndCol != 4 {
		t.Errorf("NewColumnRegion should normalise columns, got %+v", r)
	}
	if r.Width() != 3 || r.IsEmpty() {
		t.Errorf("Width() = %d, IsEmpty() = %v", r.Width(), r.IsEmpty())
	}
	if !r.Contains(2, 1) || r.Contains(2, 4) || r.Contains(1, 2) {
		t.Error("Contains() mismatch")
	}
}
