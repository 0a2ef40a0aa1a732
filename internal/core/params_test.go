package core

import "testing"

func TestIntControlClamps(t *testing.T) {
	c := NewIntControl("Speed", 5, 1, 100)
	for i := 0; i < 200; i++ {
		c.Adjust(1)
	}
	if c.Value != 100 {
		t.Fatalf("expected clamp at max 100, got %d", c.Value)
	}
	if c.CanAdjust(1) {
		t.Fatal("should not be able to increase past max")
	}
	for i := 0; i < 200; i++ {
		c.Adjust(-1)
	}
	if c.Value != 1 {
		t.Fatalf("expected clamp at min 1, got %d", c.Value)
	}
	if c.CanAdjust(-1) || !c.CanAdjust(1) {
		t.Fatal("unexpected CanAdjust at min")
	}
}

func TestNewIntControlClampsInitialValue(t *testing.T) {
	if c := NewIntControl("Speed", 500, 1, 100); c.Value != 100 {
		t.Fatalf("expected initial value clamped to 100, got %d", c.Value)
	}
	if c := NewIntControl("Speed", -3, 1, 100); c.Value != 1 {
		t.Fatalf("expected initial value clamped to 1, got %d", c.Value)
	}
}
