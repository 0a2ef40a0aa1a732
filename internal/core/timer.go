package core

import "time"

// FixedStep helps run simulation updates at a steady steps-per-second rate
// independently of the frame rate of the loop that polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
	idle        bool
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first poll is always due.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, idle: true}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick of backlog is kept so a long stall does not release a burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Poll is ShouldStep for a loop that can be paused. No backlog builds up
// while inactive; the first active poll after a pause is due at once and the
// next one a full interval later.
func (f *FixedStep) Poll(active bool) bool {
	if !active {
		f.idle = true
		return false
	}
	if f.idle {
		f.idle = false
		f.last = f.now()
		f.accumulator = f.step
	}
	return f.ShouldStep()
}
