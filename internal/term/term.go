// Package term is a terminal front-end for the simulation with mouse support.
package term

import (
	"context"
	"image"
	"image/color"
	"time"
	"unicode"

	"conway-ca/internal/core"
	"conway-ca/internal/life"
	"conway-ca/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"
)

var runeActions = map[rune]life.ActionKind{
	' ': life.ActionTogglePlay,
	'n': life.ActionStep,
	'c': life.ActionClear,
	'r': life.ActionReset,
	's': life.ActionRandomize,
	'+': life.ActionSpeedUp,
	'=': life.ActionSpeedUp,
	'-': life.ActionSpeedDown,
}

// Terminal renders a simulation on a tcell screen and feeds mouse and key
// input back into it. Only the goroutine running the loop touches the
// simulation.
type Terminal struct {
	screen tcell.Screen
	sim    *life.Simulation
	layout ui.Layout
	pacer  *core.FixedStep
	frame  time.Duration

	base   tcell.Style
	alive  tcell.Style
	dead   tcell.Style
	button tcell.Style

	buttons    tcell.ButtonMask
	aboutLines []string
	aboutWidth int
}

// New wraps an initialised screen. fps sets the redraw rate and must be positive.
func New(screen tcell.Screen, sim *life.Simulation, fps int) *Terminal {
	theme := ui.DefaultTheme()
	bg := rgb(theme.Background)
	base := tcell.StyleDefault.Background(bg).Foreground(rgb(theme.Text))
	t := &Terminal{
		screen: screen,
		sim:    sim,
		pacer:  core.NewFixedStep(sim.Speed()),
		frame:  time.Second / time.Duration(fps),
		base:   base,
		alive:  tcell.StyleDefault.Background(bg).Foreground(rgb(theme.Alive)),
		dead:   tcell.StyleDefault.Background(bg).Foreground(rgb(theme.Border)),
		button: base.Underline(true),
	}
	t.relayout()
	return t
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run pumps screen events and drives the loop until quit or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return t.loop(ctx, events)
	})
	return g.Wait()
}

func (t *Terminal) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			t.Tick()
			t.Draw()
		}
	}
}

// Handle applies one input event and reports whether the user asked to quit.
func (t *Terminal) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.relayout()
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			t.sim.Apply(life.Do(life.ActionSpeedUp))
		case tcell.KeyDown:
			t.sim.Apply(life.Do(life.ActionSpeedDown))
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			if r == 'q' {
				return true
			}
			if kind, ok := runeActions[r]; ok {
				t.sim.Apply(life.Do(kind))
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = ev.Buttons()
		if pressed {
			if a, ok := t.layout.Hit(ev.Position()); ok {
				t.sim.Apply(a)
			}
		}
	}
	return false
}

// Tick advances the simulation when playing and a step is due.
func (t *Terminal) Tick() {
	t.pacer.SetTPS(t.sim.Speed())
	if t.pacer.Poll(t.sim.Playing()) {
		t.sim.Step()
	}
}

func (t *Terminal) relayout() {
	w, h := t.screen.Size()
	size := t.sim.Grid().Size()
	t.layout = Layout(w, h, size.Rows, size.Cols)
	t.aboutLines = nil
}

// Draw renders one full frame.
func (t *Terminal) Draw() {
	s := t.screen
	s.Fill(' ', t.base)
	l := t.layout

	t.drawCentered(l.Title.X, l.Title.Y, ui.TitleText, t.base.Bold(true))
	for _, b := range l.Buttons() {
		t.drawButton(b.Rect, ui.ButtonLabel(b.Action, t.sim.Playing()), ui.ButtonEnabled(b.Action, t.sim))
	}

	grid := t.sim.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			r := l.CellRect(row, col)
			if grid.Alive(row, col) {
				for x := r.Min.X; x < r.Max.X; x++ {
					s.SetContent(x, r.Min.Y, '█', nil, t.alive)
				}
				continue
			}
			s.SetContent(r.Min.X, r.Min.Y, '·', nil, t.dead)
		}
	}

	for i, line := range ui.InfoLines(t.sim) {
		t.drawString(l.Info.X, l.Info.Y+i*l.InfoPitch, line, t.base)
	}
	t.drawAbout(l.About)
	t.drawCentered(l.Footer.X, l.Footer.Y-1, ui.FooterText, t.base.Dim(true))
	s.Show()
}

func (t *Terminal) drawAbout(rect image.Rectangle) {
	if rect.Dx() <= 0 {
		return
	}
	if t.aboutLines == nil || t.aboutWidth != rect.Dx() {
		t.aboutLines = ui.WrapText(ui.AboutText, float64(rect.Dx()), func(s string) float64 {
			return float64(runewidth.StringWidth(s))
		})
		t.aboutWidth = rect.Dx()
	}
	for i, line := range t.aboutLines {
		y := rect.Min.Y + i
		if y >= rect.Max.Y {
			return
		}
		t.drawString(rect.Min.X, y, line, t.base)
	}
}

func (t *Terminal) drawButton(rect image.Rectangle, label string, enabled bool) {
	style := t.button
	if !enabled {
		style = style.Dim(true)
	}
	for x := rect.Min.X; x < rect.Max.X; x++ {
		t.screen.SetContent(x, rect.Min.Y, ' ', nil, style)
	}
	x := rect.Min.X + (rect.Dx()-runewidth.StringWidth(label))/2
	t.drawString(x, rect.Min.Y, label, style)
}

func (t *Terminal) drawCentered(cx, y int, s string, style tcell.Style) {
	t.drawString(cx-runewidth.StringWidth(s)/2, y, s, style)
}

func (t *Terminal) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
