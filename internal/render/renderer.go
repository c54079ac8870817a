//go:build ebiten

package render

import (
	"image/color"

	"fallingsand/internal/core"
	"fallingsand/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from particle cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	rng     core.Rand
}

// NewGridPainter allocates a painter for a grid of size w*h. The rng drives
// the per-frame color jitter and is independent of the simulation's.
func NewGridPainter(w, h int, rng core.Rand) *GridPainter {
	gp := &GridPainter{
		w:       w,
		h:       h,
		buf:     make([]byte, 4*w*h),
		palette: sim.Palette(),
		rng:     rng,
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []sim.Particle, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillParticleRGBA(gp.buf, cells, gp.palette, gp.rng)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
