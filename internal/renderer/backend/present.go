package backend

import (
	"fmt"

	"github.com/dshills/typewriter/internal/renderer/core"
	"github.com/dshills/typewriter/internal/renderer/dirty"
)

// Frame runes drawn around the grid.
const (
	frameHorizontal  = '─'
	frameVertical    = '│'
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
)

// GlyphRunes maps glyph identifiers back to printable runes.
type GlyphRunes interface {
	Rune(id core.GlyphID) (rune, bool)
}

// PresenterOptions configures where and how the grid is shown.
type PresenterOptions struct {
	// Origin is the display cell of grid cell (0,0).
	Origin core.Point

	// Style is applied to every grid cell.
	Style core.Style

	// Frame draws a box around the grid. It needs one free cell on each
	// side of the origin.
	Frame bool
}

// Presenter applies draw commands to a Backend. It also keeps the glyph
// contents of the grid so the current page can be rasterized.
type Presenter struct {
	backend Backend
	glyphs  GlyphRunes
	size    core.Size
	opts    PresenterOptions
	canvas  []core.GlyphID
	pending *dirty.Batch
}

// NewPresenter creates a presenter for a grid of the given size.
func NewPresenter(b Backend, size core.Size, glyphs GlyphRunes, opts PresenterOptions) *Presenter {
	return &Presenter{
		backend: b,
		glyphs:  glyphs,
		size:    size,
		opts:    opts,
		canvas:  make([]core.GlyphID, size.Cells()),
		pending: dirty.NewBatch(size),
	}
}

// Bounds returns the display area the presenter needs, frame included.
func (p *Presenter) Bounds() core.ScreenRect {
	r := core.RectFromSize(p.opts.Origin.Row, p.opts.Origin.Col, p.size.Height, p.size.Width)
	if p.opts.Frame {
		r = core.NewScreenRect(r.Top-1, r.Left-1, r.Bottom+1, r.Right+1)
	}
	return r
}

// Fits reports an error when the grid does not fit on the backend.
func (p *Presenter) Fits() error {
	b := p.Bounds()
	if b.Top < 0 || b.Left < 0 {
		return fmt.Errorf("grid origin %s leaves no room for the frame", p.opts.Origin)
	}
	w, h := p.backend.Size()
	if b.Right > w || b.Bottom > h {
		return fmt.Errorf("grid needs %dx%d cells, display is %dx%d", b.Right, b.Bottom, w, h)
	}
	return nil
}

// Reset clears the display and the canvas and draws the frame.
func (p *Presenter) Reset() {
	p.backend.Clear()
	clear(p.canvas)
	p.backend.Fill(core.RectFromSize(p.opts.Origin.Row, p.opts.Origin.Col, p.size.Height, p.size.Width),
		core.NewStyledCell(' ', p.opts.Style))
	if p.opts.Frame {
		p.drawFrame()
	}
}

func (p *Presenter) drawFrame() {
	b := p.Bounds()
	style := core.DefaultStyle().WithAttributes(core.AttrDim)
	for x := b.Left + 1; x < b.Right-1; x++ {
		p.backend.SetCell(x, b.Top, core.NewStyledCell(frameHorizontal, style))
		p.backend.SetCell(x, b.Bottom-1, core.NewStyledCell(frameHorizontal, style))
	}
	for y := b.Top + 1; y < b.Bottom-1; y++ {
		p.backend.SetCell(b.Left, y, core.NewStyledCell(frameVertical, style))
		p.backend.SetCell(b.Right-1, y, core.NewStyledCell(frameVertical, style))
	}
	p.backend.SetCell(b.Left, b.Top, core.NewStyledCell(frameTopLeft, style))
	p.backend.SetCell(b.Right-1, b.Top, core.NewStyledCell(frameTopRight, style))
	p.backend.SetCell(b.Left, b.Bottom-1, core.NewStyledCell(frameBottomLeft, style))
	p.backend.SetCell(b.Right-1, b.Bottom-1, core.NewStyledCell(frameBottomRight, style))
}

// Apply draws cmds. Repeated writes to a cell collapse to the last one and
// cells already showing the right glyph are not rewritten.
// It returns the rows touched, merged into column spans.
func (p *Presenter) Apply(cmds []core.DrawCommand) []dirty.Region {
	p.pending.Reset()
	for _, cmd := range cmds {
		p.pending.Draw(cmd.Cell, cmd.Glyph)
	}
	for _, cmd := range p.pending.Compact() {
		p.canvas[cmd.Cell.Row*p.size.Width+cmd.Cell.Col] = cmd.Glyph
		x, y := p.opts.Origin.Col+cmd.Cell.Col, p.opts.Origin.Row+cmd.Cell.Row
		cell := core.NewStyledCell(p.runeFor(cmd.Glyph), p.opts.Style)
		if p.backend.GetCell(x, y).Equals(cell) {
			continue
		}
		p.backend.SetCell(x, y, cell)
	}
	return p.pending.Regions()
}

func (p *Presenter) runeFor(id core.GlyphID) rune {
	if id == core.GlyphBlank {
		return ' '
	}
	if r, ok := p.glyphs.Rune(id); ok {
		return r
	}
	return '?'
}

// PlaceCursor shows the display cursor at grid cell pt. A column equal to
// the grid width lands just right of the grid.
func (p *Presenter) PlaceCursor(pt core.Point) {
	p.backend.ShowCursor(p.opts.Origin.Col+pt.Col, p.opts.Origin.Row+pt.Row)
}

// Show flushes pending changes to the display.
func (p *Presenter) Show() {
	p.backend.Show()
}

// Size returns the grid dimensions.
func (p *Presenter) Size() core.Size {
	return p.size
}

// GlyphAt returns the glyph last drawn at pt.
func (p *Presenter) GlyphAt(pt core.Point) core.GlyphID {
	if !p.size.Contains(pt) {
		return core.GlyphBlank
	}
	return p.canvas[pt.Row*p.size.Width+pt.Col]
}
