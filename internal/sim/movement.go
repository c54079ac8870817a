package sim

import "fallingsand/internal/core"

// canFall reports whether the cell at (x, y) may move straight down: the
// cell below is Empty, or is Steam while the mover is a liquid (liquids
// displace steam by swapping places with it).
func (w *World) canFall(x, y int, p Particle) bool {
	below := w.Get(x, y+1)
	if below == Empty {
		return true
	}
	return below == Steam && p.IsLiquid()
}

// canFlow reports whether the cell at (x, y) may flow sideways into dir.
func (w *World) canFlow(x, y, dir int) bool {
	side := w.Get(x+dir, y)
	return side == Empty || side == Steam
}

// move applies the per-type displacement rule for a cell that did not react
// this tick. Ice, Stone and Obsidian are immobile and were already carried
// over by the whole-buffer copy.
func (w *World) move(x, y int, p Particle) {
	switch p {
	case Sand:
		w.moveSand(x, y)
	case Water, Acid:
		w.flowLiquid(x, y, p, false)
	case Lava:
		w.flowLiquid(x, y, p, true)
		// Lava stays hot whether or not it moved.
		w.SetTemperature(x, y, w.cfg.Params.LavaTemp)
	case Oil:
		// Oil is sluggish: it only attempts to move on half the ticks.
		if core.Chance(w.rng, w.cfg.Params.OilMoveChance) {
			w.flowLiquid(x, y, Oil, false)
		}
	case Steam:
		w.moveSteam(x, y)
	case Fire:
		w.moveFire(x, y)
	case Smoke:
		w.moveSmoke(x, y)
	}
}

// vacate clears the origin of a fall, swapping in Steam when the mover
// dropped into a steam cell.
func (w *World) vacate(x, y int, below Particle) {
	if below == Steam {
		w.setNext(x, y, Steam)
	} else {
		w.setNext(x, y, Empty)
	}
}

func (w *World) moveSand(x, y int) {
	if w.canFall(x, y, Sand) {
		w.setNext(x, y+1, Sand)
		w.vacate(x, y, w.Get(x, y+1))
		return
	}
	dir := core.Dir(w.rng)
	for _, d := range [2]int{dir, -dir} {
		diag := w.Get(x+d, y+1)
		if diag == Empty || diag == Steam {
			w.setNext(x+d, y+1, Sand)
			w.vacate(x, y, diag)
			return
		}
	}
}

// flowLiquid moves a liquid: straight down when possible, otherwise a random
// horizontal direction, then the opposite one. A hot liquid pins its own and
// its destination's temperature to the lava temperature.
func (w *World) flowLiquid(x, y int, p Particle, hot bool) {
	if w.canFall(x, y, p) {
		w.setNext(x, y+1, p)
		if hot {
			w.SetTemperature(x, y+1, w.cfg.Params.LavaTemp)
		}
		w.vacate(x, y, w.Get(x, y+1))
		return
	}
	dir := core.Dir(w.rng)
	for _, d := range [2]int{dir, -dir} {
		if w.canFlow(x, y, d) {
			w.setNext(x+d, y, p)
			if hot {
				w.SetTemperature(x+d, y, w.cfg.Params.LavaTemp)
			}
			w.setNext(x, y, Empty)
			return
		}
	}
}

func (w *World) moveSteam(x, y int) {
	if w.Get(x, y-1) == Empty {
		w.setNext(x, y-1, Steam)
		w.setNext(x, y, Empty)
		return
	}
	dir := core.Dir(w.rng)
	for _, d := range [2]int{dir, -dir} {
		if w.Get(x+d, y) == Empty {
			w.setNext(x+d, y, Steam)
			w.setNext(x, y, Empty)
			return
		}
	}
	// Trapped steam slowly dissipates.
	if core.Chance(w.rng, w.cfg.Params.SteamDissipateChance) {
		w.setNext(x, y, Empty)
	}
}

func (w *World) moveFire(x, y int) {
	par := &w.cfg.Params
	moved := false

	if w.Get(x, y-1) == Empty && core.Chance(w.rng, par.FireRiseChance) {
		w.setNext(x, y-1, Fire)
		w.SetTemperature(x, y-1, par.FireTemp)
		moved = true
	}

	if !moved && core.Chance(w.rng, par.FireSpreadChance) {
		dir := core.Dir(w.rng)
		if w.Get(x+dir, y) == Empty {
			w.setNext(x+dir, y, Fire)
			w.SetTemperature(x+dir, y, par.FireTemp)
			moved = true
		}
	}

	if moved {
		w.setNext(x, y, Empty)
	}
	w.SetTemperature(x, y, par.FireTemp)
}

func (w *World) moveSmoke(x, y int) {
	par := &w.cfg.Params

	if w.Get(x, y-1) == Empty && core.Chance(w.rng, par.SmokeRiseChance) {
		w.setNext(x, y-1, Smoke)
		w.setNext(x, y, Empty)
	} else {
		dir := w.rng.IntN(3) - 1
		if dir != 0 && w.Get(x+dir, y) == Empty && core.Chance(w.rng, par.SmokeDriftChance) {
			w.setNext(x+dir, y, Smoke)
			w.setNext(x, y, Empty)
		}
	}

	// Smoke fades out independently of how it drifted.
	if core.Chance(w.rng, par.SmokeFadeChance) {
		w.setNext(x, y, Empty)
	}
}
