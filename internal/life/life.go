// Package life implements Conway's Game of Life on a toroidal grid and the
// interactive simulation state built around it.
package life

import "conway-ca/internal/core"

// CountNeighbors returns the number of live cells among the eight
// neighbours of (row, col), wrapping around the grid edges.
func CountNeighbors(g *core.Grid, row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			neighbors += int(g.At(r, c))
		}
	}
	return neighbors
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) uint8 {
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}

// Step returns the next generation of g as a new grid. g is not modified.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Rows(), g.Cols())
	StepInto(next, g)
	return next
}

// StepInto writes the generation following src into dst. dst must have the
// same dimensions as src and must not be the same grid.
func StepInto(dst, src *core.Grid) {
	rows, cols := src.Rows(), src.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			n := CountNeighbors(src, row, col)
			dst.Set(row, col, NextState(src.Alive(row, col), n))
		}
	}
}
