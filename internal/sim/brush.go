package sim

// Paint stamps a filled circle of particles centered on (cx, cy). It is the
// only mutation entry point the input layer uses outside a tick. Cells in
// the protected boundary ring are never touched; occupied cells are only
// overwritten when they hold Steam or when painting Empty (erasing). Every
// written cell receives its type's initial placement temperature.
func (w *World) Paint(cx, cy int, p Particle, radius int) {
	if radius < 0 {
		radius = 0
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			nx, ny := cx+dx, cy+dy
			if nx <= 0 || nx >= w.w-1 || ny < 0 || ny >= w.h-2 {
				continue
			}
			target := w.Get(nx, ny)
			if p != Empty && target != Empty && target != Steam {
				continue
			}
			w.Set(nx, ny, p)
			w.SetTemperature(nx, ny, p.PlaceTemp())
		}
	}
}
