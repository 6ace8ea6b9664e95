package table

type cellRef struct {
	row int
	col Column
}

// Expansion remembers which truncated cells the user has expanded. It belongs to a single
// displayed result and must be Reset when a new result replaces it.
type Expansion struct {
	open map[cellRef]bool
}

// NewExpansion returns an expansion state with every cell collapsed.
func NewExpansion() *Expansion {
	return &Expansion{open: make(map[cellRef]bool)}
}

// Toggle flips the state of a cell and returns the new state.
func (e *Expansion) Toggle(row int, col Column) bool {
	ref := cellRef{row: row, col: col}
	if e.open[ref] {
		delete(e.open, ref)
		return false
	}
	e.open[ref] = true
	return true
}

// IsExpanded reports whether a cell is expanded.
func (e *Expansion) IsExpanded(row int, col Column) bool {
	return e.open[cellRef{row: row, col: col}]
}

// Reset collapses every cell.
func (e *Expansion) Reset() {
	e.open = make(map[cellRef]bool)
}

// Text returns what a cell currently shows.
func (e *Expansion) Text(r Row, col Column) string {
	c := r.Cell(col)
	if !c.Truncated || e.IsExpanded(r.Number, col) {
		return c.Full
	}
	return c.Preview
}
