package ui

import "image/color"

// Theme collects the colors shared by both front-ends.
type Theme struct {
	Background color.RGBA
	Alive      color.RGBA
	Text       color.RGBA
	Border     color.RGBA
}

// DefaultTheme is green on black with dark grey cell borders.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Alive:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Text:       color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Border:     color.RGBA{R: 50, G: 50, B: 50, A: 255},
	}
}
