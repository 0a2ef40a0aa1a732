package core

// Grid stores a fixed-size 2D board of binary cells in row-major order.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// At returns the cell value at (row, col).
func (g *Grid) At(row, col int) uint8 { return g.data[g.Index(row, col)] }

// Alive reports whether the cell at (row, col) is live.
func (g *Grid) Alive(row, col int) bool { return g.At(row, col) == 1 }

// Set stores a cell value; any non-zero value is stored as 1.
func (g *Grid) Set(row, col int, v uint8) {
	if v != 0 {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	idx := g.Index(row, col)
	g.data[idx] ^= 1
}

// Live returns the number of live cells.
func (g *Grid) Live() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.data, g.data)
	return c
}

// Equal reports whether two grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
