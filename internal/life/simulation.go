package life

import "conway-ca/internal/core"

// Config holds the fixed parameters of a simulation.
type Config struct {
	Rows int
	Cols int

	// MaxGeneration caps the generation counter; reaching it pauses play.
	MaxGeneration int

	Speed    int
	SpeedMin int
	SpeedMax int

	Seed int64
}

// DefaultConfig returns the standard 25x25 configuration.
func DefaultConfig() Config {
	return Config{
		Rows:          25,
		Cols:          25,
		MaxGeneration: 99999,
		Speed:         5,
		SpeedMin:      1,
		SpeedMax:      100,
		Seed:          42,
	}
}

// Simulation owns the board, the reset snapshot, the generation counter, the
// play state and the speed setting. It is not safe for concurrent use; the
// presentation loop is its only caller.
type Simulation struct {
	cfg Config

	grid     *core.Grid
	next     *core.Grid
	snapshot *core.Grid

	generation int
	playing    bool
	speed      core.IntControl

	rng *core.RNG
}

// New returns a paused simulation with an all-dead grid and snapshot.
func New(cfg Config) *Simulation {
	if cfg.MaxGeneration < 0 {
		cfg.MaxGeneration = 0
	}
	s := &Simulation{
		cfg:      cfg,
		grid:     core.NewGrid(cfg.Rows, cfg.Cols),
		next:     core.NewGrid(cfg.Rows, cfg.Cols),
		snapshot: core.NewGrid(cfg.Rows, cfg.Cols),
		speed:    core.NewIntControl("Speed", cfg.Speed, cfg.SpeedMin, cfg.SpeedMax),
		rng:      core.NewRNG(cfg.Seed),
	}
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Grid exposes the current generation. Callers must treat it as read-only.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Snapshot exposes the reset target. Callers must treat it as read-only.
func (s *Simulation) Snapshot() *core.Grid { return s.snapshot }

// Generation returns the number of steps since the last clear or reset.
func (s *Simulation) Generation() int { return s.generation }

// Playing reports whether the loop should step automatically.
func (s *Simulation) Playing() bool { return s.playing }

// Speed returns the current pacing in steps per second.
func (s *Simulation) Speed() int { return s.speed.Value }

// SpeedControl returns the speed setting with its bounds.
func (s *Simulation) SpeedControl() core.IntControl { return s.speed }

// LiveCells returns the number of live cells on the board.
func (s *Simulation) LiveCells() int { return s.grid.Live() }

// Step advances one generation. Once the counter has reached the configured
// ceiling the grid is left untouched, play is paused and Step returns false.
func (s *Simulation) Step() bool {
	if s.generation >= s.cfg.MaxGeneration {
		s.playing = false
		return false
	}
	StepInto(s.next, s.grid)
	s.grid, s.next = s.next, s.grid
	s.generation++
	return true
}

// ToggleCell flips one cell and commits the resulting board as the reset
// target. Coordinates outside the grid are ignored.
func (s *Simulation) ToggleCell(row, col int) {
	if !s.grid.Contains(row, col) {
		return
	}
	s.grid.Toggle(row, col)
	s.snapshot.CopyFrom(s.grid)
}

// ClearOrReset restores the snapshot when restore is true and empties the
// board otherwise. Either way play is paused and the counter is zeroed.
func (s *Simulation) ClearOrReset(restore bool) {
	if restore {
		s.grid.CopyFrom(s.snapshot)
	} else {
		s.grid.Clear()
	}
	s.playing = false
	s.generation = 0
}

// Clear empties the board.
func (s *Simulation) Clear() { s.ClearOrReset(false) }

// Reset restores the board to the last hand-edited configuration.
func (s *Simulation) Reset() { s.ClearOrReset(true) }

// Randomize fills the board with uniform random cells. The snapshot, counter
// and play state are left alone.
func (s *Simulation) Randomize() {
	core.FillBinary(s.rng.Source(), s.grid.Cells())
}

// TogglePlay flips between playing and paused.
func (s *Simulation) TogglePlay() { s.playing = !s.playing }

// IncreaseSpeed raises the speed by one step, up to the maximum.
func (s *Simulation) IncreaseSpeed() { s.speed.Adjust(1) }

// DecreaseSpeed lowers the speed by one step, down to the minimum.
func (s *Simulation) DecreaseSpeed() { s.speed.Adjust(-1) }

// Apply dispatches a single action.
func (s *Simulation) Apply(a Action) {
	switch a.Kind {
	case ActionTogglePlay:
		s.TogglePlay()
	case ActionClear:
		s.Clear()
	case ActionReset:
		s.Reset()
	case ActionRandomize:
		s.Randomize()
	case ActionSpeedUp:
		s.IncreaseSpeed()
	case ActionSpeedDown:
		s.DecreaseSpeed()
	case ActionToggleCell:
		s.ToggleCell(a.Row, a.Col)
	case ActionStep:
		s.Step()
	}
}
