package term

import (
	"image"

	"conway-ca/internal/ui"
)

const (
	cellWidth   = 2
	gridLeft    = 2
	gridTop     = 4
	buttonRow   = 2
	buttonWidth = 11
	buttonGap   = 2
	panelGap    = 3
	speedTop    = 4
	aboutTop    = 8
)

// Layout places the board and panels on a width x height character screen.
// Each cell is two columns wide so the board keeps a square aspect.
func Layout(width, height, rows, cols int) ui.Layout {
	gridW := cols * cellWidth
	l := ui.Layout{
		Screen: image.Rect(0, 0, width, height),
		Grid:   image.Rect(gridLeft, gridTop, gridLeft+gridW, gridTop+rows),
		Rows:   rows,
		Cols:   cols,
		CellW:  cellWidth,
		CellH:  1,
		Title:  image.Pt(width/2, 0),
		Footer: image.Pt(width/2, height),
	}

	n := len(ui.MainActions)
	startX := (width - (n*buttonWidth + (n-1)*buttonGap)) / 2
	if startX < 0 {
		startX = 0
	}
	for i, kind := range ui.MainActions {
		x := startX + i*(buttonWidth+buttonGap)
		l.Main = append(l.Main, ui.Button{
			Rect:   image.Rect(x, buttonRow, x+buttonWidth, buttonRow+1),
			Action: kind,
		})
	}

	panelX := l.Grid.Max.X + panelGap
	l.Info = image.Pt(panelX, gridTop)
	l.InfoPitch = 1
	for i, kind := range ui.SpeedActions {
		y := gridTop + speedTop + i*2
		l.Speed = append(l.Speed, ui.Button{
			Rect:   image.Rect(panelX, y, panelX+buttonWidth, y+1),
			Action: kind,
		})
	}

	aboutRight := width - 1
	if aboutRight < panelX {
		aboutRight = panelX
	}
	aboutBottom := height - 2
	if aboutBottom < gridTop+aboutTop {
		aboutBottom = gridTop + aboutTop
	}
	l.About = image.Rect(panelX, gridTop+aboutTop, aboutRight, aboutBottom)
	return l
}
