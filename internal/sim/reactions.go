package sim

import "fallingsand/internal/core"

// neighborOffsets is the fixed Moore-neighborhood scan order: top row first,
// left to right, centre excluded. Rules that convert "the first matching
// neighbor" depend on this exact order as a tie-break, so it must not change.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// adjacent reports whether any of the 8 neighbors of (x, y) holds target in
// the pre-tick snapshot.
func (w *World) adjacent(x, y int, target Particle) bool {
	for _, d := range neighborOffsets {
		if w.Get(x+d[0], y+d[1]) == target {
			return true
		}
	}
	return false
}

// replaceNeighbor converts the first neighbor of (x, y) holding target, in
// scan order, into replacement.
func (w *World) replaceNeighbor(x, y int, target, replacement Particle) {
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if w.Get(nx, ny) == target {
			w.setNext(nx, ny, replacement)
			return
		}
	}
}

// react applies chemical and thermal transformations for the cell at (x, y).
// It returns true when a transformation consumed the cell this tick, in
// which case movement is skipped.
func (w *World) react(x, y int, p Particle) bool {
	par := &w.cfg.Params

	switch p {
	case Lava:
		// Lava + water: obsidian, and the water flashes to steam.
		if w.adjacent(x, y, Water) {
			w.setNext(x, y, Obsidian)
			w.replaceNeighbor(x, y, Water, Steam)
			return true
		}
		// Cooled lava solidifies.
		if w.Temperature(x, y) < par.LavaSolidifyBelow {
			w.setNext(x, y, Stone)
			return true
		}

	case Water:
		if w.adjacent(x, y, Lava) || w.adjacent(x, y, Fire) || w.Temperature(x, y) > par.WaterBoilAbove {
			w.setNext(x, y, Steam)
			return true
		}
		if w.Temperature(x, y) < 0 {
			w.setNext(x, y, Ice)
			return true
		}

	case Ice:
		if w.Temperature(x, y) > 0 || w.adjacent(x, y, Lava) || w.adjacent(x, y, Fire) {
			w.setNext(x, y, Water)
			return true
		}

	case Steam:
		if w.Temperature(x, y) < par.SteamCondenseBelow && core.Chance(w.rng, par.SteamCondenseChance) {
			w.setNext(x, y, Water)
			return true
		}

	case Fire:
		if w.adjacent(x, y, Oil) {
			w.replaceNeighbor(x, y, Oil, Fire)
			// Burning oil occasionally smothers the flame itself.
			if core.Chance(w.rng, par.FireSmolderChance) {
				w.setNext(x, y, Smoke)
				return true
			}
		} else if w.adjacent(x, y, Water) {
			w.setNext(x, y, Smoke)
			w.replaceNeighbor(x, y, Water, Steam)
			return true
		} else if core.Chance(w.rng, par.FireBurnoutChance) {
			w.setNext(x, y, Smoke)
			return true
		}

	case Acid:
		// Acid eats sand and ice around it; each bite may consume the acid.
		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if nx <= 0 || nx >= w.w-1 || ny <= 0 || ny >= w.h-2 {
				continue
			}
			n := w.Get(nx, ny)
			if n == Sand || n == Ice {
				w.setNext(nx, ny, Empty)
				if core.Chance(w.rng, par.AcidConsumeChance) {
					w.setNext(x, y, Empty)
					return true
				}
			}
		}

	case Oil:
		if w.adjacent(x, y, Fire) || w.adjacent(x, y, Lava) {
			w.setNext(x, y, Fire)
			return true
		}
	}

	return false
}
