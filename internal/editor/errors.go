package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/typewriter/internal/renderer/core"
)

// Rejection reasons. A rejected input changes nothing and draws nothing.
var (
	// ErrBufferFull rejects typing and Enter when no cell is left.
	ErrBufferFull = errors.New("buffer full")

	// ErrAtStart rejects Backspace and ArrowLeft at the logical start.
	ErrAtStart = errors.New("caret at start")

	// ErrAtEnd rejects ArrowRight at the logical end.
	ErrAtEnd = errors.New("caret at end")
)

// InvariantError describes a broken internal expectation. It is raised with
// panic and indicates a logic defect rather than a runtime condition.
type InvariantError struct {
	Op          string     // Operation being performed
	Expectation string     // What should have held
	Cursor      core.Point // Caret when the violation was detected
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("editor invariant violated in %s at caret %s: %s", e.Op, e.Cursor, e.Expectation)
}

// violate panics with an InvariantError.
func (e *Editor) violate(op, format string, args ...any) {
	panic(&InvariantError{
		Op:          op,
		Expectation: fmt.Sprintf(format, args...),
		Cursor:      e.cursor.Caret(),
	})
}
