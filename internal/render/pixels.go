package render

import (
	"image/color"

	"fallingsand/internal/core"
	"fallingsand/internal/sim"
)

// fillParticleRGBA converts particle cells into RGBA pixels using the
// palette, applying the per-type presentation jitter: fire flickers toward
// red, lava shimmers, steam and smoke get a wavering alpha. Empty cells
// render with their palette color (opaque black background).
func fillParticleRGBA(buf []byte, cells []sim.Particle, palette []color.RGBA, rng core.Rand) {
	for i, p := range cells {
		base := i * 4
		if int(p) >= len(palette) {
			p = sim.Empty
		}
		col := palette[p]

		switch p {
		case sim.Fire:
			v := rng.IntN(50)
			col.R = addClamp(col.R, v)
			col.G = subClamp(col.G, v/2)
		case sim.Lava:
			v := rng.IntN(30)
			if r := int(col.R) - v; r > 200 {
				col.R = uint8(r)
			} else {
				col.R = 200
			}
		case sim.Steam:
			col.A = uint8(100 + rng.IntN(80))
		case sim.Smoke:
			col.A = uint8(150 + rng.IntN(50))
		}

		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func addClamp(c uint8, v int) uint8 {
	r := int(c) + v
	if r > 255 {
		r = 255
	}
	return uint8(r)
}

func subClamp(c uint8, v int) uint8 {
	r := int(c) - v
	if r < 0 {
		r = 0
	}
	return uint8(r)
}
