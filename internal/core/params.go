package core

// IntControl is a bounded integer setting adjusted in fixed increments from
// the UI, such as the simulation speed.
type IntControl struct {
	Label string

	Value int
	Step  int
	Min   int
	Max   int
}

// NewIntControl returns a control whose initial value is clamped into
// [min, max].
func NewIntControl(label string, value, min, max int) IntControl {
	if max < min {
		max = min
	}
	c := IntControl{Label: label, Step: 1, Min: min, Max: max}
	c.Set(value)
	return c
}

// Set stores v clamped to the control bounds and returns the stored value.
func (c *IntControl) Set(v int) int {
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	c.Value = v
	return v
}

// Adjust moves the value by direction*Step and clamps it.
func (c *IntControl) Adjust(direction int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	return c.Set(c.Value + direction*step)
}

// CanAdjust reports whether moving in direction would change the value.
func (c IntControl) CanAdjust(direction int) bool {
	switch {
	case direction > 0:
		return c.Value < c.Max
	case direction < 0:
		return c.Value > c.Min
	default:
		return false
	}
}
