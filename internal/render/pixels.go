// Package render uploads board state into images for the GUI front-end.
package render

import "image/color"

// fillCellPixels writes one RGBA pixel per cell into buf: alive for live
// cells, dead for the rest.
func fillCellPixels(buf []byte, cells []uint8, alive, dead color.RGBA) {
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = alive
		}
		p := buf[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = px.R, px.G, px.B, px.A
	}
}
