package gapbuffer

import (
	"fmt"
	"iter"
	"strings"
)

// Code identifies a character stored in the buffer. Values other than
// Newline are glyph identifiers supplied by the font table.
type Code uint16

const (
	// Blank is the glyph identifier of the space character.
	Blank Code = 0

	// Newline marks a line break. It is never drawn.
	Newline Code = 0xFFFF
)

// DefaultCapacity is the number of cells allocated when no capacity is configured.
const DefaultCapacity = 4096

// Buffer is a fixed-capacity gap buffer.
// It is not safe for concurrent use; the editor owns it exclusively.
type Buffer struct {
	cells  []Code
	before int // count of cells before the caret
	after  int // index one before the first after-caret cell
}

// New creates an empty buffer holding at most capacity characters.
func New(capacity int) *Buffer {
	if capacity < 1 {
		panic(fmt.Sprintf("gapbuffer: capacity must be positive, got %d", capacity))
	}
	return &Buffer{
		cells:  make([]Code, capacity),
		before: 0,
		after:  capacity - 1,
	}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.cells)
}

// Len returns the number of stored characters.
func (b *Buffer) Len() int {
	return b.before + (len(b.cells) - 1 - b.after)
}

// Gap returns the number of unused cells.
func (b *Buffer) Gap() int {
	return b.after - b.before + 1
}

// IsEmpty reports whether the caret is at the logical start.
func (b *Buffer) IsEmpty() bool {
	return b.before == 0
}

// IsFull reports whether no further character can be inserted.
func (b *Buffer) IsFull() bool {
	return b.before == b.after+1
}

// IsAtLogicalEnd reports whether nothing follows the caret.
func (b *Buffer) IsAtLogicalEnd() bool {
	return b.after == len(b.cells)-1
}

// Insert writes c at the caret and moves the caret past it.
func (b *Buffer) Insert(c Code) {
	if b.IsFull() {
		panic(fmt.Sprintf("gapbuffer: insert into full buffer (capacity %d)", len(b.cells)))
	}
	b.cells[b.before] = c
	b.before++
}

// DeleteBackward removes the character before the caret. The removed value
// stays physically in the gap until overwritten; read it with Before first.
func (b *Buffer) DeleteBackward() {
	if b.IsEmpty() {
		panic("gapbuffer: delete backward at logical start")
	}
	b.before--
}

// MoveCaretLeft moves the caret one character towards the start without
// changing content order.
func (b *Buffer) MoveCaretLeft() {
	if b.IsEmpty() {
		panic("gapbuffer: move caret left at logical start")
	}
	b.cells[b.after] = b.cells[b.before-1]
	b.before--
	b.after--
}

// MoveCaretRight moves the caret one character towards the end.
func (b *Buffer) MoveCaretRight() {
	if b.IsAtLogicalEnd() {
		panic("gapbuffer: move caret right at logical end")
	}
	b.cells[b.before] = b.cells[b.after+1]
	b.after++
	b.before++
}

// Before returns the character immediately before the caret.
func (b *Buffer) Before() (Code, bool) {
	if b.IsEmpty() {
		return 0, false
	}
	return b.cells[b.before-1], true
}

// After returns the character immediately after the caret.
func (b *Buffer) After() (Code, bool) {
	if b.IsAtLogicalEnd() {
		return 0, false
	}
	return b.cells[b.after+1], true
}

// Backward yields the characters before the caret, nearest first.
func (b *Buffer) Backward() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for i := b.before - 1; i >= 0; i-- {
			if !yield(b.cells[i]) {
				return
			}
		}
	}
}

// Forward yields the characters after the caret, nearest first.
func (b *Buffer) Forward() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for i := b.after + 1; i < len(b.cells); i++ {
			if !yield(b.cells[i]) {
				return
			}
		}
	}
}

// Codes returns a copy of the logical content in order.
func (b *Buffer) Codes() []Code {
	out := make([]Code, 0, b.Len())
	out = append(out, b.cells[:b.before]...)
	out = append(out, b.cells[b.after+1:]...)
	return out
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.before = 0
	b.after = len(b.cells) - 1
}

// String renders the content for debugging, with '|' marking the caret and
// numeric glyph identifiers.
func (b *Buffer) String() string {
	var sb strings.Builder
	write := func(c Code) {
		if c == Newline {
			sb.WriteString("\\n ")
			return
		}
		fmt.Fprintf(&sb, "%d ", c)
	}
	for _, c := range b.cells[:b.before] {
		write(c)
	}
	sb.WriteString("| ")
	for _, c := range b.cells[b.after+1:] {
		write(c)
	}
	return strings.TrimSpace(sb.String())
}
