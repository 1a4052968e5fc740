package game

// FixedClock turns variable frame times into a whole number of fixed
// simulation steps.
type FixedClock struct {
	Step     float32
	MaxSteps int // per frame, so a long stall can't spiral

	accumulator float32
}

func NewFixedClock(step float32) *FixedClock {
	return &FixedClock{Step: step, MaxSteps: 8}
}

// Advance adds frameTime and returns how many steps to run now. Time that
// exceeds MaxSteps is dropped.
func (c *FixedClock) Advance(frameTime float32) int {
	if c.Step <= 0 || !(frameTime > 0) {
		return 0
	}
	c.accumulator += frameTime

	steps := 0
	for c.accumulator >= c.Step && steps < c.MaxSteps {
		c.accumulator -= c.Step
		steps++
	}
	if steps == c.MaxSteps {
		c.accumulator = 0
	}
	return steps
}

// Alpha is the fraction of a step left in the accumulator.
func (c *FixedClock) Alpha() float32 {
	if c.Step <= 0 {
		return 0
	}
	return c.accumulator / c.Step
}

func (c *FixedClock) Reset() {
	c.accumulator = 0
}
