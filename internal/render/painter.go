//go:build ebiten

package render

import (
	"image"
	"image/color"

	"conway-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter keeps one pixel per cell in an offscreen image and scales it
// onto the board rectangle, then strokes the cell borders on top.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{
		rows: size.Rows,
		cols: size.Cols,
		img:  ebiten.NewImage(size.Cols, size.Rows),
		buf:  make([]byte, 4*size.Cells()),
	}
}

// Blit uploads the grid and draws it into rect with cellW x cellH cells.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, rect image.Rectangle, cellW, cellH int, alive, dead color.RGBA, border color.Color) {
	cells := g.Cells()
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillCellPixels(gp.buf, cells, alive, dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellW), float64(cellH))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	dst.DrawImage(gp.img, op)

	gp.strokeBorders(dst, rect, cellW, cellH, border)
}

func (gp *GridPainter) strokeBorders(dst *ebiten.Image, rect image.Rectangle, cellW, cellH int, border color.Color) {
	top, bottom := float32(rect.Min.Y), float32(rect.Max.Y)
	left, right := float32(rect.Min.X), float32(rect.Max.X)
	for col := 0; col <= gp.cols; col++ {
		x := float32(rect.Min.X+col*cellW) + 0.5
		vector.StrokeLine(dst, x, top, x, bottom, 1, border, false)
	}
	for row := 0; row <= gp.rows; row++ {
		y := float32(rect.Min.Y+row*cellH) + 0.5
		vector.StrokeLine(dst, left, y, right, y, 1, border, false)
	}
}
