package linecache

import (
	"slices"
	"testing"

	"github.com/dshills/typewriter/internal/engine/gapbuffer"
)

// bufferOf builds a buffer from text with the caret at the end.
// Newlines become gapbuffer.Newline, other bytes become their value.
func bufferOf(text string) *gapbuffer.Buffer {
	b := gapbuffer.New(256)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.Insert(gapbuffer.Newline)
			continue
		}
		b.Insert(gapbuffer.Code(text[i]))
	}
	return b
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		lineLen, width int
		rows, last     int
	}{
		{0, 5, 1, 0},
		{1, 5, 1, 1},
		{5, 5, 1, 5},
		{6, 5, 2, 1},
		{10, 5, 2, 5},
		{11, 5, 3, 1},
	}

	for _, tt := range tests {
		rows, last := RowsFor(tt.lineLen, tt.width)
		if rows != tt.rows || last != tt.last {
			t.Errorf("RowsFor(%d, %d) = %d, %d; want %d, %d",
				tt.lineLen, tt.width, rows, last, tt.rows, tt.last)
		}
	}
}

func TestRebuildShortLine(t *testing.T) {
	for n := 0; n < 5; n++ {
		c := New(5, 2)
		b := bufferOf("ABCD"[:n])

		col := c.Rebuild(b.Backward(), 0)
		if col != n || c.Length(0) != n {
			t.Errorf("n=%d: Rebuild() = %d, Length(0) = %d", n, col, c.Length(0))
		}
	}
}

func TestRebuildFullRow(t *testing.T) {
	c := New(5, 2)
	b := bufferOf("ABCDE")

	if col := c.Rebuild(b.Backward(), 0); col != 5 {
		t.Errorf("Rebuild() = %d, want 5", col)
	}
	if c.Length(0) != 5 {
		t.Errorf("Length(0) = %d, want 5", c.Length(0))
	}
}

func TestRebuild(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		height   int
		caretRow int
		want     []int
	}{
		{"wrapped line", "ABCDEFGHIJK", 5, 2, 1, []int{5, 1}},
		{"wrapped line anchored at line start", "ABCDEFG", 5, 3, 1, []int{5, 2, 0}},
		{"newline then text", "AB\nCD", 5, 2, 1, []int{2, 2}},
		{"caret after newline", "AB\n", 5, 2, 1, []int{2, 0}},
		{"empty lines", "\n\n", 4, 3, 2, []int{0, 0, 0}},
		{"exact width line then newline", "ABCDE\nF", 5, 2, 1, []int{5, 1}},
		{"more rows than visible", "A\nBB\nCCC\nDDDD", 5, 2, 1, []int{3, 4}},
		{"long line above", "ABCDEFGHIJKLM\nXY", 5, 3, 2, []int{5, 3, 2}},
		{"caret row above bottom", "AB\nCD", 5, 4, 1, []int{2, 2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.width, tt.height)
			b := bufferOf(tt.text)

			col := c.Rebuild(b.Backward(), tt.caretRow)
			if got := c.Lengths(); !slices.Equal(got, tt.want) {
				t.Errorf("Lengths() = %v, want %v", got, tt.want)
			}
			if col != tt.want[tt.caretRow] {
				t.Errorf("Rebuild() = %d, want %d", col, tt.want[tt.caretRow])
			}
			if c.CaretRow() != tt.caretRow {
				t.Errorf("CaretRow() = %d, want %d", c.CaretRow(), tt.caretRow)
			}
		})
	}
}

func TestRebuildCaretInMiddle(t *testing.T) {
	c := New(5, 2)
	b := bufferOf("AB\nCDEFGH")
	for i := 0; i < 4; i++ {
		b.MoveCaretLeft()
	}

	// Caret sits after "CD" on the second row; the tail is ignored.
	c.Rebuild(b.Backward(), 1)
	if got := c.Lengths(); !slices.Equal(got, []int{2, 2}) {
		t.Errorf("Lengths() = %v, want [2 2]", got)
	}
}

func TestRebuildCounts(t *testing.T) {
	c := New(5, 2)
	b := bufferOf("A")
	c.Rebuild(b.Backward(), 0)
	c.Rebuild(b.Backward(), 0)

	if c.Rebuilds() != 2 {
		t.Errorf("Rebuilds() = %d, want 2", c.Rebuilds())
	}
}

func TestRebuildInvalidRow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rebuild with out-of-range row should panic")
		}
	}()
	New(5, 2).Rebuild(bufferOf("").Backward(), 2)
}

func TestCaretColumn(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"AB", 2},
		{"AB\n", 0},
		{"AB\nCDE", 3},
		{"ABCDE", 5},
		{"ABCDEF", 1},
		{"X\nABCDEFGHIJ", 5},
	}

	for _, tt := range tests {
		if got := CaretColumn(bufferOf(tt.text).Backward(), 5); got != tt.want {
			t.Errorf("CaretColumn(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
