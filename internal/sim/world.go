package sim

import (
	"fallingsand/internal/core"
)

// World stores the falling-sand grid: two same-shape particle buffers plus
// the co-located temperature field. cur is the readable snapshot; next is
// write-only while a tick is in progress and becomes cur on swap, so every
// rule decision within one tick sees only pre-tick state.
type World struct {
	cfg Config

	w, h int

	cur  []Particle
	next []Particle
	temp []int

	rng core.Rand
}

// New returns a world with the provided dimensions using default tunables.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 3 {
		cfg.Width = 3
	}
	if cfg.Height < 3 {
		cfg.Height = 3
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		cur:  make([]Particle, total),
		next: make([]Particle, total),
		temp: make([]int, total),
		rng:  core.NewRNG(cfg.Seed),
	}
	w.Clear()
	return w
}

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current particle buffer in row-major order. Callers must
// treat it as read-only; the backing slice changes identity on every tick.
func (w *World) Cells() []Particle { return w.cur }

func (w *World) idx(x, y int) int { return y*w.w + x }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.w && y >= 0 && y < w.h
}

// isBoundary reports whether (x, y) is part of the protected enclosure: the
// bottom two rows and the outer columns.
func (w *World) isBoundary(x, y int) bool {
	return y >= w.h-2 || x == 0 || x == w.w-1
}

// Get reads the current buffer. Out-of-bounds coordinates read as Stone so
// the exterior behaves as solid and edge rules need no bounds branch.
func (w *World) Get(x, y int) Particle {
	if !w.inBounds(x, y) {
		return Stone
	}
	return w.cur[w.idx(x, y)]
}

// Set writes the current buffer between ticks. Writes to out-of-bounds or
// boundary-protected cells are silently dropped.
func (w *World) Set(x, y int, p Particle) {
	if !w.inBounds(x, y) || w.isBoundary(x, y) {
		return
	}
	w.cur[w.idx(x, y)] = p
}

// setNext writes the in-progress buffer during a tick.
func (w *World) setNext(x, y int, p Particle) {
	if !w.inBounds(x, y) {
		return
	}
	w.next[w.idx(x, y)] = p
}

// Temperature reads the thermal field; out-of-bounds reads are ambient.
func (w *World) Temperature(x, y int) int {
	if !w.inBounds(x, y) {
		return AmbientTemp
	}
	return w.temp[w.idx(x, y)]
}

// SetTemperature writes the thermal field; out-of-bounds writes are dropped.
func (w *World) SetTemperature(x, y, t int) {
	if !w.inBounds(x, y) {
		return
	}
	w.temp[w.idx(x, y)] = t
}

// Clear resets every cell to Empty at ambient temperature and restores the
// stone enclosure. Takes effect immediately.
func (w *World) Clear() {
	for i := range w.cur {
		w.cur[i] = Empty
		w.next[i] = Empty
		w.temp[i] = AmbientTemp
	}
	w.stampBoundary(w.cur)
	w.stampBoundary(w.next)
}

// stampBoundary forces the floor and walls to Stone in the given buffer.
func (w *World) stampBoundary(buf []Particle) {
	for x := 0; x < w.w; x++ {
		buf[w.idx(x, w.h-1)] = Stone
		buf[w.idx(x, w.h-2)] = Stone
	}
	for y := 0; y < w.h; y++ {
		buf[w.idx(0, y)] = Stone
		buf[w.idx(w.w-1, y)] = Stone
	}
}

// Step advances the simulation by one tick if the clock allows it. Cells are
// scanned from the row above the floor upward, left to right; reactions are
// tried before movement for every live cell. Rule writes land in next and
// are never re-read within the tick, so colliding writes into one target
// resolve as last-writer-wins under the fixed scan order. The temperature
// field diffuses once after the scan, then the buffers swap.
func (w *World) Step(clock *core.Clock) {
	if !clock.ShouldStep() {
		return
	}

	copy(w.next, w.cur)
	w.stampBoundary(w.next)

	for y := w.h - 3; y >= 0; y-- {
		for x := 1; x < w.w-1; x++ {
			p := w.cur[w.idx(x, y)]
			if p == Empty {
				continue
			}
			if w.react(x, y, p) {
				continue
			}
			w.move(x, y, p)
		}
	}

	w.diffuse()

	w.cur, w.next = w.next, w.cur
	clock.Ticks++
}
