//go:build ebiten

// Package app adapts the simulation to the ebiten.Game interface.
package app

import (
	"log"

	"conway-ca/internal/core"
	"conway-ca/internal/life"
	"conway-ca/internal/render"
	"conway-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key  ebiten.Key
	kind life.ActionKind
}{
	{ebiten.KeySpace, life.ActionTogglePlay},
	{ebiten.KeyN, life.ActionStep},
	{ebiten.KeyC, life.ActionClear},
	{ebiten.KeyR, life.ActionReset},
	{ebiten.KeyS, life.ActionRandomize},
	{ebiten.KeyUp, life.ActionSpeedUp},
	{ebiten.KeyEqual, life.ActionSpeedUp},
	{ebiten.KeyKPAdd, life.ActionSpeedUp},
	{ebiten.KeyDown, life.ActionSpeedDown},
	{ebiten.KeyMinus, life.ActionSpeedDown},
	{ebiten.KeyKPSubtract, life.ActionSpeedDown},
}

// Game drives a simulation from ebiten's update and draw callbacks.
type Game struct {
	sim     *life.Simulation
	layout  ui.Layout
	theme   ui.Theme
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
}

// New constructs a Game for the provided simulation.
func New(sim *life.Simulation, geom ui.Geometry) (*Game, error) {
	theme := ui.DefaultTheme()
	hud, err := ui.NewHUD(theme, geom.BaseFontSize)
	if err != nil {
		return nil, err
	}
	size := sim.Grid().Size()
	return &Game{
		sim:     sim,
		layout:  ui.PixelLayout(geom, size.Rows, size.Cols),
		theme:   theme,
		painter: render.NewGridPainter(size),
		hud:     hud,
		pacer:   core.NewFixedStep(sim.Speed()),
	}, nil
}

// Update drains input and advances the simulation when a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.sim.Apply(life.Do(ka.kind))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if a, ok := g.layout.Hit(ebiten.CursorPosition()); ok {
			g.sim.Apply(a)
		}
	}

	g.pacer.SetTPS(g.sim.Speed())
	if g.pacer.Poll(g.sim.Playing()) {
		if !g.sim.Step() {
			log.Printf("generation ceiling %d reached; pausing", g.sim.Config().MaxGeneration)
		}
	}
	return nil
}

// Draw renders the board and the surrounding panels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	g.painter.Blit(screen, g.sim.Grid(), g.layout.Grid, g.layout.CellW, g.layout.CellH, g.theme.Alive, g.theme.Background, g.theme.Border)
	g.hud.Draw(screen, g.layout, g.sim)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Screen.Dx(), g.layout.Screen.Dy()
}
