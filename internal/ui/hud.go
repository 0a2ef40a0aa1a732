//go:build ebiten

package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"

	"conway-ca/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	titleFontSize = 25
	aboutFontSize = 14
	aboutSpacing  = 1.1
)

// HUD draws the title, controls and text panels around the board.
type HUD struct {
	theme Theme

	base  *text.GoTextFace
	title *text.GoTextFace
	about *text.GoTextFace

	aboutLines []string
	aboutWidth int
}

// NewHUD loads the embedded monospace font at the sizes the layout needs.
func NewHUD(theme Theme, baseSize int) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	log.Printf("[Font] Go Mono (embedded)")
	return &HUD{
		theme: theme,
		base:  &text.GoTextFace{Source: src, Size: float64(baseSize)},
		title: &text.GoTextFace{Source: src, Size: titleFontSize},
		about: &text.GoTextFace{Source: src, Size: aboutFontSize},
	}, nil
}

// Draw paints every panel except the board itself.
func (h *HUD) Draw(screen *ebiten.Image, l Layout, sim *life.Simulation) {
	h.drawText(screen, TitleText, h.title, float64(l.Title.X), float64(l.Title.Y), text.AlignCenter, text.AlignCenter)

	for _, b := range l.Buttons() {
		h.drawButton(screen, b.Rect, ButtonLabel(b.Action, sim.Playing()), ButtonEnabled(b.Action, sim))
	}

	for i, line := range InfoLines(sim) {
		y := l.Info.Y + i*l.InfoPitch
		h.drawText(screen, line, h.base, float64(l.Info.X), float64(y), text.AlignStart, text.AlignStart)
	}

	h.drawAbout(screen, l.About)
	h.drawText(screen, FooterText, h.about, float64(l.Footer.X), float64(l.Footer.Y), text.AlignCenter, text.AlignEnd)
}

func (h *HUD) drawAbout(screen *ebiten.Image, rect image.Rectangle) {
	if rect.Dx() <= 0 {
		return
	}
	if h.aboutLines == nil || h.aboutWidth != rect.Dx() {
		h.aboutLines = WrapText(AboutText, float64(rect.Dx()), func(s string) float64 {
			w, _ := text.Measure(s, h.about, 0)
			return w
		})
		h.aboutWidth = rect.Dx()
	}
	m := h.about.Metrics()
	lineHeight := (m.HAscent + m.HDescent + m.HLineGap) * aboutSpacing
	for i, line := range h.aboutLines {
		y := float64(rect.Min.Y) + float64(i)*lineHeight
		if y+lineHeight > float64(rect.Max.Y) {
			return
		}
		h.drawText(screen, line, h.about, float64(rect.Min.X), y, text.AlignStart, text.AlignStart)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), h.theme.Background, false)
	cx := float64(rect.Min.X) + float64(rect.Dx())/2
	cy := float64(rect.Min.Y) + float64(rect.Dy())/2
	fg := h.theme.Text
	if !enabled {
		fg = h.theme.Border
	}
	h.drawTextColor(screen, label, h.base, cx, cy, text.AlignCenter, text.AlignCenter, fg)
	bottom := float32(rect.Max.Y)
	vector.StrokeLine(screen, float32(rect.Min.X), bottom, float32(rect.Max.X), bottom, 1, h.theme.Border, false)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, primary, secondary text.Align) {
	h.drawTextColor(screen, s, face, x, y, primary, secondary, h.theme.Text)
}

func (h *HUD) drawTextColor(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, primary, secondary text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(screen, s, face, op)
}
