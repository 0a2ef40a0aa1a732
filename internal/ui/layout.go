// Package ui lays out the board, buttons and panels of the visualizer and
// maps pointer positions back to simulation actions.
package ui

import (
	"image"

	"conway-ca/internal/life"
)

// Button is a clickable rectangle bound to an action.
type Button struct {
	Rect   image.Rectangle
	Action life.ActionKind
}

// Layout holds the screen-space geometry of one frame. Units are pixels for
// the GUI and character cells for the terminal front-end.
type Layout struct {
	Screen image.Rectangle

	Grid         image.Rectangle
	Rows, Cols   int
	CellW, CellH int

	Main  []Button
	Speed []Button

	Title     image.Point // centre of the title line
	Info      image.Point // top-left of the info panel
	InfoPitch int
	About     image.Rectangle
	Footer    image.Point // bottom-centre of the footer line
}

// MainActions lists the action row in display order.
var MainActions = []life.ActionKind{
	life.ActionTogglePlay,
	life.ActionClear,
	life.ActionReset,
	life.ActionRandomize,
}

// SpeedActions lists the speed controls in display order.
var SpeedActions = []life.ActionKind{
	life.ActionSpeedUp,
	life.ActionSpeedDown,
}

// Geometry describes the GUI window and control sizes in pixels.
type Geometry struct {
	Width, Height int
	CellSize      int

	ButtonW, ButtonH int
	ButtonMargin     int

	BaseFontSize int
}

// DefaultGeometry returns the standard 960x720 window with 22px cells.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        960,
		Height:       720,
		CellSize:     22,
		ButtonW:      82,
		ButtonH:      20,
		ButtonMargin: 25,
		BaseFontSize: 15,
	}
}

const (
	mainButtonsY   = 50
	titleY         = 20
	footerInset    = 5
	gridNudgeY     = 15
	infoInsetX     = 160
	speedInsetX    = 150
	infoLineGap    = 10
	infoLines      = 3
	speedGapY      = 20
	aboutGap       = 10
	aboutEdgeInset = 20
)

// PixelLayout computes the GUI layout for a rows x cols board.
func PixelLayout(g Geometry, rows, cols int) Layout {
	gridW := cols * g.CellSize
	gridH := rows * g.CellSize
	gridX := (g.Width - gridW) / 2
	gridY := (g.Height - gridH + gridNudgeY) / 2

	l := Layout{
		Screen: image.Rect(0, 0, g.Width, g.Height),
		Grid:   image.Rect(gridX, gridY, gridX+gridW, gridY+gridH),
		Rows:   rows,
		Cols:   cols,
		CellW:  g.CellSize,
		CellH:  g.CellSize,
		Title:  image.Pt(g.Width/2, titleY),
		Footer: image.Pt(g.Width/2, g.Height-footerInset),
	}

	n := len(MainActions)
	startX := (g.Width - (n*g.ButtonW + (n-1)*g.ButtonMargin)) / 2
	for i, kind := range MainActions {
		x := startX + i*(g.ButtonW+g.ButtonMargin)
		l.Main = append(l.Main, Button{
			Rect:   image.Rect(x, mainButtonsY, x+g.ButtonW, mainButtonsY+g.ButtonH),
			Action: kind,
		})
	}

	l.InfoPitch = g.BaseFontSize + infoLineGap
	l.Info = image.Pt(gridX-infoInsetX, gridY)

	speedX := gridX - speedInsetX
	speedY := gridY + infoLines*l.InfoPitch + speedGapY
	for i, kind := range SpeedActions {
		y := speedY + i*(g.ButtonH+g.ButtonMargin)
		l.Speed = append(l.Speed, Button{
			Rect:   image.Rect(speedX, y, speedX+g.ButtonW, y+g.ButtonH),
			Action: kind,
		})
	}

	aboutX := gridX + gridW + aboutGap
	aboutW := g.Width - (gridX + gridW + aboutEdgeInset)
	l.About = image.Rect(aboutX, gridY, aboutX+aboutW, g.Height-footerInset)
	return l
}

// CellAt maps a position inside the board to its (row, col).
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	if !pointInRect(x, y, l.Grid) || l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}
	col = (x - l.Grid.Min.X) / l.CellW
	row = (y - l.Grid.Min.Y) / l.CellH
	if row >= l.Rows || col >= l.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect returns the screen rectangle covered by cell (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := l.Grid.Min.X + col*l.CellW
	y := l.Grid.Min.Y + row*l.CellH
	return image.Rect(x, y, x+l.CellW, y+l.CellH)
}

// Hit translates a pointer press into an action. Presses that land on
// neither the board nor a button report false.
func (l Layout) Hit(x, y int) (life.Action, bool) {
	if row, col, ok := l.CellAt(x, y); ok {
		return life.ToggleCell(row, col), true
	}
	for _, group := range [][]Button{l.Main, l.Speed} {
		for _, b := range group {
			if pointInRect(x, y, b.Rect) {
				return life.Do(b.Action), true
			}
		}
	}
	return life.Action{}, false
}

// Buttons returns every button in draw order.
func (l Layout) Buttons() []Button {
	out := make([]Button, 0, len(l.Main)+len(l.Speed))
	out = append(out, l.Main...)
	return append(out, l.Speed...)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
