//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"conway-ca/internal/app"
	"conway-ca/internal/life"
	"conway-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim := life.New(cfg.LifeConfig())

	geom := ui.DefaultGeometry()
	geom.CellSize = cfg.CellSize
	game, err := app.New(sim, geom)
	if err != nil {
		log.Fatalf("init ui: %v", err)
	}

	ebiten.SetWindowTitle(ui.TitleText)
	ebiten.SetTPS(cfg.FrameRate())
	ebiten.SetWindowSize(geom.Width, geom.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
