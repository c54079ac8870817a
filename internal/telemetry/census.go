// Package telemetry records per-tick particle censuses for rule tuning.
package telemetry

import "fallingsand/internal/sim"

// Census is one sampled row of world statistics: how many cells of each
// type exist, plus temperature aggregates over the occupied cells.
type Census struct {
	Tick int64 `csv:"tick"`

	Sand     int `csv:"sand"`
	Water    int `csv:"water"`
	Lava     int `csv:"lava"`
	Stone    int `csv:"stone"`
	Steam    int `csv:"steam"`
	Ice      int `csv:"ice"`
	Acid     int `csv:"acid"`
	Oil      int `csv:"oil"`
	Fire     int `csv:"fire"`
	Smoke    int `csv:"smoke"`
	Obsidian int `csv:"obsidian"`

	TempMean float64 `csv:"temp_mean"`
	TempMax  int     `csv:"temp_max"`
}

// Take samples the world into a Census row. Temperature aggregates cover
// occupied cells only; an empty world reports ambient.
func Take(w *sim.World, tick int64) Census {
	c := Census{Tick: tick, TempMax: sim.AmbientTemp}

	size := w.Size()
	sum := 0
	occupied := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p := w.Get(x, y)
			if p == sim.Empty {
				continue
			}
			switch p {
			case sim.Sand:
				c.Sand++
			case sim.Water:
				c.Water++
			case sim.Lava:
				c.Lava++
			case sim.Stone:
				c.Stone++
			case sim.Steam:
				c.Steam++
			case sim.Ice:
				c.Ice++
			case sim.Acid:
				c.Acid++
			case sim.Oil:
				c.Oil++
			case sim.Fire:
				c.Fire++
			case sim.Smoke:
				c.Smoke++
			case sim.Obsidian:
				c.Obsidian++
			}
			t := w.Temperature(x, y)
			sum += t
			if t > c.TempMax {
				c.TempMax = t
			}
			occupied++
		}
	}
	if occupied > 0 {
		c.TempMean = float64(sum) / float64(occupied)
	} else {
		c.TempMean = sim.AmbientTemp
	}
	return c
}
