package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the total number of cells.
func (s Size) Cells() int { return s.Rows * s.Cols }
