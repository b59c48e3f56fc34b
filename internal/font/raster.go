package font

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Canvas is a grid of glyph identifiers.
type Canvas interface {
	Size() core.Size
	GlyphAt(p core.Point) core.GlyphID
}

// Rasterizer turns a canvas into pixels.
type Rasterizer struct {
	table  *Table
	ink    color.Color
	paper  color.Color
	margin int
}

// NewRasterizer creates a rasterizer drawing ink glyphs on paper.
func NewRasterizer(table *Table, ink, paper color.Color) *Rasterizer {
	return &Rasterizer{table: table, ink: ink, paper: paper, margin: 4}
}

// CellSize returns the pixel size of one grid cell.
func (r *Rasterizer) CellSize() image.Point {
	f := r.table.Face()
	return image.Pt(f.Advance, f.Height)
}

// Render draws every non-blank cell of c.
func (r *Rasterizer) Render(c Canvas) *image.RGBA {
	size := c.Size()
	cell := r.CellSize()
	bounds := image.Rect(0, 0, size.Width*cell.X+2*r.margin, size.Height*cell.Y+2*r.margin)

	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(r.paper), image.Point{}, draw.Src)

	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.ink),
		Face: r.table.Face(),
	}
	ascent := r.table.Face().Ascent
	for row := 0; row < size.Height; row++ {
		for col := 0; col < size.Width; col++ {
			id := c.GlyphAt(core.Pt(col, row))
			if id == core.GlyphBlank {
				continue
			}
			ch, ok := r.table.Rune(id)
			if !ok {
				continue
			}
			d.Dot = fixed.P(r.margin+col*cell.X, r.margin+row*cell.Y+ascent)
			d.DrawString(string(ch))
		}
	}
	return img
}

// WritePNG renders c and encodes it as PNG.
func (r *Rasterizer) WritePNG(w io.Writer, c Canvas) error {
	if err := png.Encode(w, r.Render(c)); err != nil {
		return fmt.Errorf("encoding canvas png: %w", err)
	}
	return nil
}
