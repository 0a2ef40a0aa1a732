package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"conway-ca/internal/life"
)

const (
	minCellSize = 8
	maxCellSize = 24
)

// Config represents the command-line parameters for the application.
type Config struct {
	Speed         int
	MaxGeneration int
	Seed          int64
	TPS           int
	CellSize      int
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Speed:         d.Speed,
		MaxGeneration: d.MaxGeneration,
		Seed:          0,
		TPS:           60,
		CellSize:      22,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "initial generations per second")
	fs.IntVar(&c.MaxGeneration, "max-gen", c.MaxGeneration, "generation count at which playback pauses")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 seeds from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the UI loop (raised to the top speed if lower)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (GUI only)")
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	d := life.DefaultConfig()
	var errs []error
	if c.Speed < d.SpeedMin || c.Speed > d.SpeedMax {
		errs = append(errs, fmt.Errorf("speed %d out of range [%d,%d]", c.Speed, d.SpeedMin, d.SpeedMax))
	}
	if c.MaxGeneration < 1 {
		errs = append(errs, fmt.Errorf("max-gen %d must be positive", c.MaxGeneration))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.CellSize < minCellSize || c.CellSize > maxCellSize {
		errs = append(errs, fmt.Errorf("cell %d out of range [%d,%d]", c.CellSize, minCellSize, maxCellSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FrameRate is the loop rate to run at. Steps are polled once per frame, so
// it never drops below the fastest selectable speed.
func (c *Config) FrameRate() int {
	return max(c.TPS, life.DefaultConfig().SpeedMax)
}

// LifeConfig builds the simulation configuration. A zero seed is replaced by
// the current time.
func (c *Config) LifeConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Speed = c.Speed
	cfg.MaxGeneration = c.MaxGeneration
	cfg.Seed = c.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
