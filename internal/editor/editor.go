package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/typewriter/internal/engine/gapbuffer"
	"github.com/dshills/typewriter/internal/input/key"
	"github.com/dshills/typewriter/internal/renderer/core"
	"github.com/dshills/typewriter/internal/renderer/cursor"
	"github.com/dshills/typewriter/internal/renderer/dirty"
	"github.com/dshills/typewriter/internal/renderer/linecache"
)

// Glyphs is the font collaborator: it maps characters to glyph identifiers
// and back.
type Glyphs interface {
	Glyph(r rune) (core.GlyphID, bool)
	Rune(id core.GlyphID) (rune, bool)
}

// Result is the outcome of one input.
type Result struct {
	// Commands are the draw commands for this input, in order.
	Commands []core.DrawCommand

	// Err is ErrBufferFull, ErrAtStart or ErrAtEnd when the input was
	// rejected, nil otherwise.
	Err error

	// Ignored is true when the input has no meaning for the typewriter.
	Ignored bool

	// Relayout is true when the whole grid was repainted.
	Relayout bool
}

// Rejected reports whether the input hit a capacity or boundary limit.
func (r Result) Rejected() bool {
	return r.Err != nil
}

// Editor is the typewriter state machine. It is not safe for concurrent use.
type Editor struct {
	size   core.Size
	glyphs Glyphs

	buf    *gapbuffer.Buffer
	cursor *cursor.Position
	lines  *linecache.Cache
	batch  *dirty.Batch

	relaid bool
}

// New creates an editor for a grid of the given size holding at most
// capacity characters.
func New(size core.Size, capacity int, glyphs Glyphs) (*Editor, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, fmt.Errorf("buffer capacity must be positive, got %d", capacity)
	}
	if glyphs == nil {
		return nil, fmt.Errorf("glyph table is required")
	}
	return &Editor{
		size:   size,
		glyphs: glyphs,
		buf:    gapbuffer.New(capacity),
		cursor: cursor.New(size),
		lines:  linecache.New(size.Width, size.Height),
		batch:  dirty.NewBatch(size),
	}, nil
}

// Size returns the grid dimensions.
func (e *Editor) Size() core.Size {
	return e.size
}

// Handle processes one resolved key symbol.
func (e *Editor) Handle(sym key.Symbol) Result {
	switch sym.Action {
	case key.ActionChar:
		return e.Type(sym.Char)
	case key.ActionBackspace:
		return e.Backspace()
	case key.ActionLeft:
		return e.Left()
	case key.ActionRight:
		return e.Right()
	case key.ActionEnter:
		return e.Enter()
	default:
		return Result{Ignored: true}
	}
}

// Type inserts a printable character at the caret.
func (e *Editor) Type(r rune) Result {
	g, ok := e.glyphs.Glyph(r)
	if !ok {
		return Result{Ignored: true}
	}
	return e.run(func() error { return e.typeGlyph(g) })
}

// Backspace deletes the character before the caret.
func (e *Editor) Backspace() Result {
	return e.run(e.backspace)
}

// Left moves the caret one character back.
func (e *Editor) Left() Result {
	return e.run(e.left)
}

// Right moves the caret one character forward.
func (e *Editor) Right() Result {
	return e.run(e.right)
}

// Enter inserts a line break.
func (e *Editor) Enter() Result {
	return e.run(e.enter)
}

// Redraw clears the grid and repaints it around the caret's current row.
func (e *Editor) Redraw() Result {
	return e.run(func() error {
		e.relayout()
		return nil
	})
}

// run executes one input against a fresh batch.
func (e *Editor) run(op func() error) Result {
	e.batch.Reset()
	e.relaid = false
	if err := op(); err != nil {
		return Result{Err: err}
	}
	return Result{Commands: e.batch.Commands(), Relayout: e.relaid}
}

// Caret returns the caret position. Its column may equal the grid width.
func (e *Editor) Caret() core.Point {
	return e.cursor.Caret()
}

// DrawingSlot returns the cell the next glyph lands in, or false when the
// caret is at the end of the canvas and typing would scroll.
func (e *Editor) DrawingSlot() (core.Point, bool) {
	if e.cursor.AtCanvasEnd() {
		return core.Point{}, false
	}
	return e.cursor.DrawingSlot(), true
}

// State is a diagnostic view of the editor after an input.
type State struct {
	Caret    core.Point
	Stored   int // characters in the buffer
	Gap      int // free cells
	CacheRow int // caret row of the last line-cache rebuild
	Rebuilds uint64
}

func (s State) String() string {
	return fmt.Sprintf("caret %s, %d stored, gap %d, cache row %d after %d rebuilds",
		s.Caret, s.Stored, s.Gap, s.CacheRow, s.Rebuilds)
}

// State returns the current diagnostic view.
func (e *Editor) State() State {
	return State{
		Caret:    e.cursor.Caret(),
		Stored:   e.buf.Len(),
		Gap:      e.buf.Gap(),
		CacheRow: e.lines.CaretRow(),
		Rebuilds: e.lines.Rebuilds(),
	}
}

// LineLengths returns the line-length cache as of its last rebuild.
func (e *Editor) LineLengths() []int {
	return e.lines.Lengths()
}

// Len returns the number of characters stored.
func (e *Editor) Len() int {
	return e.buf.Len()
}

// Cap returns the buffer capacity.
func (e *Editor) Cap() int {
	return e.buf.Cap()
}

// Text returns the logical content, with '\n' for line breaks.
func (e *Editor) Text() string {
	var sb strings.Builder
	for _, c := range e.buf.Codes() {
		if c == gapbuffer.Newline {
			sb.WriteByte('\n')
			continue
		}
		r, ok := e.glyphs.Rune(core.GlyphID(c))
		if !ok {
			r = '?'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
