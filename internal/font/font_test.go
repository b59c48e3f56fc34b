package font

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/dshills/typewriter/internal/renderer/core"
)

func TestTableSpaceIsBlank(t *testing.T) {
	tbl := NewTable()

	id, ok := tbl.Glyph(' ')
	if !ok || id != core.GlyphBlank {
		t.Errorf("Glyph(' ') = %d, %v; want blank", id, ok)
	}
}

func TestTableRoundTrip(t *testing.T) {
	tbl := NewTable()

	for r := rune(' '); r < 0x7f; r++ {
		id, ok := tbl.Glyph(r)
		if !ok {
			t.Fatalf("Glyph(%q) missing", r)
		}
		back, ok := tbl.Rune(id)
		if !ok || back != r {
			t.Errorf("Rune(Glyph(%q)) = %q, %v", r, back, ok)
		}
	}
}

func TestTableCoversTypewriterCharacters(t *testing.T) {
	tbl := NewTable()

	const typewriter = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"?!.,:'\"" +
		"0123456789" +
		"+-*/=()"
	for _, r := range typewriter {
		if !tbl.Printable(r) {
			t.Errorf("Printable(%q) = false", r)
		}
	}
}

func TestTableUnknown(t *testing.T) {
	tbl := NewTable()

	if _, ok := tbl.Glyph('世'); ok {
		t.Error("CJK rune should have no glyph")
	}
	if _, ok := tbl.Rune(core.GlyphID(tbl.Len() + 10)); ok {
		t.Error("out-of-range glyph should have no rune")
	}
}

func TestTablePrintable(t *testing.T) {
	tbl := NewTable()

	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{' ', true},
		{'~', true},
		{'\n', false},
		{'\t', false},
		{0x7f, false},
	}

	for _, tt := range tests {
		if got := tbl.Printable(tt.r); got != tt.want {
			t.Errorf("Printable(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

type testCanvas struct {
	size   core.Size
	glyphs map[core.Point]core.GlyphID
}

func (c *testCanvas) Size() core.Size { return c.size }

func (c *testCanvas) GlyphAt(p core.Point) core.GlyphID { return c.glyphs[p] }

func TestRasterizerRender(t *testing.T) {
	tbl := NewTable()
	id, _ := tbl.Glyph('#')
	canvas := &testCanvas{
		size:   core.Size{Width: 3, Height: 2},
		glyphs: map[core.Point]core.GlyphID{core.Pt(1, 1): id},
	}

	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	r := NewRasterizer(tbl, black, white)

	img := r.Render(canvas)
	cell := r.CellSize()
	want := 3*cell.X + 8
	if img.Bounds().Dx() != want {
		t.Errorf("image width = %d, want %d", img.Bounds().Dx(), want)
	}

	inked := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("rendered '#' should ink some pixels")
	}
}

func TestRasterizerWritePNG(t *testing.T) {
	tbl := NewTable()
	canvas := &testCanvas{size: core.Size{Width: 2, Height: 2}}
	r := NewRasterizer(tbl, color.Black, color.White)

	var buf bytes.Buffer
	if err := r.WritePNG(&buf, canvas); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}
