package core

import "testing"

func countSteps(c *Clock, frames int) int {
	steps := 0
	for i := 0; i < frames; i++ {
		if c.ShouldStep() {
			steps++
		}
	}
	return steps
}

func TestClockFullSpeed(t *testing.T) {
	c := NewClock()
	if got := countSteps(c, 60); got != 60 {
		t.Errorf("1x clock stepped %d times in 60 frames, want 60", got)
	}
}

func TestClockFrameSkip(t *testing.T) {
	cases := []struct {
		scale  float64
		frames int
		want   int
	}{
		{0.5, 60, 30},
		{0.25, 60, 15},
		{0.1, 60, 6},
		{2, 60, 60}, // above 1x still steps at most once per frame
		{4, 60, 60},
		{0.3, 60, 15}, // ceil(1/0.3) = 4
	}
	for _, tc := range cases {
		c := NewClock()
		c.SetScale(tc.scale)
		if got := countSteps(c, tc.frames); got != tc.want {
			t.Errorf("scale %.2f: %d steps in %d frames, want %d", tc.scale, got, tc.frames, tc.want)
		}
	}
}

func TestClockPause(t *testing.T) {
	c := NewClock()
	c.Paused = true
	if got := countSteps(c, 10); got != 0 {
		t.Errorf("paused clock stepped %d times", got)
	}
	// Pausing must not consume frames: resuming picks up the same cadence.
	c.Paused = false
	if got := countSteps(c, 10); got != 10 {
		t.Errorf("resumed clock stepped %d times in 10 frames, want 10", got)
	}
}

func TestClockScaleClamped(t *testing.T) {
	c := NewClock()
	c.SetScale(100)
	if c.Scale != MaxScale {
		t.Errorf("Scale = %f, want clamp to %f", c.Scale, MaxScale)
	}
	c.SetScale(0.0001)
	if c.Scale != MinScale {
		t.Errorf("Scale = %f, want clamp to %f", c.Scale, MinScale)
	}
}
