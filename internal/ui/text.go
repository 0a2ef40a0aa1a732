package ui

import (
	"fmt"

	"conway-ca/internal/life"
)

const (
	TitleText  = "Conway's Game of Life"
	FooterText = "conway-ca 1.0 - left click cells to edit, space to play"
)

// AboutText is the rules panel shown beside the board.
const AboutText = "Conway's Game of Life is a cellular automaton with simple rules that can lead to complex, organic-like patterns.\n\n" +
	"The game takes place on a 2-D grid of cells that are either alive or dead and evolve based on the game's rules.\n\n" +
	"These are the 4 rules:\n" +
	"\nUnderpopulation: Any live cell with fewer than two live neighbors dies.\n" +
	"\nStability: Any live cell with two or three live neighbors lives on to the next generation.\n" +
	"\nOverpopulation: Any live cell with more than three live neighbors dies.\n" +
	"\nReproduction: Any dead cell with exactly three live neighbors becomes a live cell."

// ButtonLabel returns the caption for a control. The play toggle reflects
// the current play state.
func ButtonLabel(kind life.ActionKind, playing bool) string {
	switch kind {
	case life.ActionTogglePlay:
		if playing {
			return "Pause"
		}
		return "Play"
	case life.ActionClear:
		return "Clear"
	case life.ActionReset:
		return "Reset"
	case life.ActionRandomize:
		return "Randomize"
	case life.ActionSpeedUp:
		return "Faster"
	case life.ActionSpeedDown:
		return "Slower"
	case life.ActionStep:
		return "Step"
	default:
		return ""
	}
}

// ButtonEnabled reports whether pressing the control would change anything.
// Only the speed controls can be exhausted.
func ButtonEnabled(kind life.ActionKind, s *life.Simulation) bool {
	switch kind {
	case life.ActionSpeedUp:
		return s.SpeedControl().CanAdjust(1)
	case life.ActionSpeedDown:
		return s.SpeedControl().CanAdjust(-1)
	default:
		return true
	}
}

// InfoLines returns the statistics panel contents.
func InfoLines(s *life.Simulation) []string {
	speed := s.SpeedControl()
	return []string{
		fmt.Sprintf("Generation: %d", s.Generation()),
		fmt.Sprintf("Live Cells: %d", s.LiveCells()),
		fmt.Sprintf("%s: %d", speed.Label, speed.Value),
	}
}
