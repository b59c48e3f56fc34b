// Package dirty accumulates the draw commands produced while handling one
// input event and reports which parts of the grid they touch.
package dirty

// Region is a span of columns on a single grid row.
type Region struct {
	Row int

	// StartCol is the first column of the span (inclusive).
	StartCol int

	// EndCol is the last column of the span (exclusive).
	EndCol int
}

// NewColumnRegion creates a region covering [startCol, endCol) on row.
func NewColumnRegion(row, startCol, endCol int) Region {
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return Region{Row: row, StartCol: startCol, EndCol: endCol}
}

// IsEmpty returns true if the region covers no cells.
func (r Region) IsEmpty() bool {
	return r.StartCol >= r.EndCol
}

// Width returns the number of cells covered.
func (r Region) Width() int {
	if r.IsEmpty() {
		return 0
	}
	return r.EndCol - r.StartCol
}

// Contains returns true if the region covers the cell.
func (r Region) Contains(row, col int) bool {
	return row == r.Row && col >= r.StartCol && col < r.EndCol
}

// Merge combines two regions on the same row when they overlap or touch.
// Returns the merged region and true if merging was possible.
func (r Region) Merge(other Region) (Region, bool) {
	if r.Row != other.Row {
		return Region{}, false
	}
	if r.EndCol < other.StartCol || other.EndCol < r.StartCol {
		return Region{}, false
	}
	return Region{
		Row:      r.Row,
		StartCol: min(r.StartCol, other.StartCol),
		EndCol:   max(r.EndCol, other.EndCol),
	}, true
}
