package core

import "math"

// Scale bounds for the simulation speed multiplier.
const (
	MinScale = 0.1
	MaxScale = 4.0
)

// Clock gates simulation stepping for the frame-driven main loop. The loop
// mutates it once per frame (pause toggles, speed changes); the world only
// reads it through ShouldStep and bumps Ticks when a step completes.
type Clock struct {
	Paused bool
	Scale  float64
	Ticks  int64

	frames int64
}

// NewClock returns a running clock at 1x speed.
func NewClock() *Clock {
	return &Clock{Scale: 1}
}

// SetScale clamps and stores the speed multiplier.
func (c *Clock) SetScale(scale float64) {
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	c.Scale = scale
}

// ShouldStep advances the frame counter and reports whether a simulation
// step should run this frame. At scale s a step runs every ceil(1/s) frames;
// a paused clock never steps and does not consume frames.
func (c *Clock) ShouldStep() bool {
	if c.Paused {
		return false
	}
	c.frames++
	scale := c.Scale
	if scale <= 0 {
		scale = 1
	}
	skip := int64(math.Ceil(1 / scale))
	if skip < 1 {
		skip = 1
	}
	return c.frames%skip == 0
}
