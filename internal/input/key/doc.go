// Package key provides physical key events and their resolution into
// typewriter symbols.
//
// This package defines:
//
//   - Key: a physical key on the keyboard, independent of layout
//   - Modifier: modifier keys (Shift, Ctrl, Alt, Meta)
//   - Event: a single key press with modifiers and timestamp
//   - Layout: the table mapping (key, shift) to a character
//   - Resolver: turns an Event into a Symbol, either a printable
//     character or a control action (Backspace, Left, Right, Enter)
//
// # Layouts
//
// Two layouts are provided. LayoutQWERTY is the US arrangement.
// LayoutQWERTZ is the German typewriter: the Y and Z keys are transposed,
// both shifted and unshifted, and the digit and punctuation keys carry the
// German legends. Keys without a German legend print nothing.
package key
