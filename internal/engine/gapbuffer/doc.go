// Package gapbuffer provides the fixed-capacity two-stack text store used by
// the typewriter editor.
//
// The buffer keeps a single contiguous array split by a gap. Cells before the
// gap hold the characters logically before the caret, cells after the gap
// hold the characters logically after it:
//
//	[ before-caret | gap (unused) | after-caret ]
//	 0        before-1  before..after  after+1  N-1
//
// Insertion and backward deletion at the caret are O(1). Moving the caret by
// one character swaps a single cell across the gap, also O(1).
//
// Bounds are a caller contract: every mutating operation has a matching
// predicate (IsFull, IsEmpty, IsAtLogicalEnd) that must be checked first.
// Violating a precondition panics.
package gapbuffer
