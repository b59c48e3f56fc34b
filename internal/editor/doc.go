// Package editor implements the typewriter: it owns the gap buffer and the
// display cursor, turns resolved key symbols into buffer edits, and emits
// the draw commands that keep the character grid consistent with the
// buffer.
//
// Every call to Handle processes one input completely and returns the
// commands for that input. Most edits repaint only the tail that shifted.
// When the caret crosses the bottom or top of the grid the editor performs
// a relayout: the whole grid is cleared and repainted around the caret,
// seeded by the line-length cache instead of a scan from the buffer start.
//
// Reaching a capacity or boundary limit (full buffer, caret at either end)
// rejects the input without touching any state. Broken internal invariants
// panic with an *InvariantError.
package editor
