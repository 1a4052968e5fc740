package game

import (
	"math"
	"testing"
)

func TestFixedClockAccumulates(t *testing.T) {
	c := NewFixedClock(0.25)

	tests := []struct {
		frame float32
		want  int
	}{
		{0.125, 0},
		{0.125, 1},
		{0.5, 2},
		{0.375, 1},
		{0.125, 1},
	}
	for i, tt := range tests {
		if got := c.Advance(tt.frame); got != tt.want {
			t.Errorf("frame %d: Advance(%v) = %d, expected %d", i, tt.frame, got, tt.want)
		}
	}
	if c.Alpha() != 0 {
		t.Errorf("Expected empty accumulator, got alpha %v", c.Alpha())
	}
}

func TestFixedClockCapsSteps(t *testing.T) {
	c := NewFixedClock(0.25)
	c.MaxSteps = 3

	if got := c.Advance(10); got != 3 {
		t.Errorf("Expected 3 capped steps, got %d", got)
	}
	if got := c.Advance(0.125); got != 0 {
		t.Errorf("Expected the stall to be dropped, got %d steps", got)
	}
}

func TestFixedClockIgnoresBadFrames(t *testing.T) {
	c := NewFixedClock(0.25)

	for _, frame := range []float32{-1, 0, float32(math.NaN())} {
		if got := c.Advance(frame); got != 0 {
			t.Errorf("Advance(%v) = %d, expected 0", frame, got)
		}
	}

	c.Advance(0.125)
	if c.Alpha() != 0.5 {
		t.Errorf("Expected alpha 0.5, got %v", c.Alpha())
	}
	c.Reset()
	if c.Alpha() != 0 {
		t.Errorf("Expected alpha 0 after reset, got %v", c.Alpha())
	}
}
