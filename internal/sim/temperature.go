package sim

// diffuse runs one temperature diffusion pass over the interior. Each
// non-Empty cell takes the mean of its own temperature and those of its
// non-Empty Moore neighbors (the cell itself always counts, so the divisor
// is at least 1), then the result relaxes one degree toward ambient. Empty
// cells are inert: they neither update nor contribute. Enclosure cells are
// read as neighbors but never updated, so the walls hold ambient and act
// as a heat sink. The pass runs in place in scan order, so later cells see
// values written earlier in the same pass; occupancy comes from the
// pre-swap buffer.
func (w *World) diffuse() {
	for y := 0; y < w.h-2; y++ {
		for x := 1; x < w.w-1; x++ {
			if w.Get(x, y) == Empty {
				continue
			}

			sum := w.Temperature(x, y)
			count := 1
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if w.Get(x+dx, y+dy) != Empty {
						sum += w.Temperature(x+dx, y+dy)
						count++
					}
				}
			}

			t := sum / count
			if t > AmbientTemp {
				t--
				if t < AmbientTemp {
					t = AmbientTemp
				}
			} else if t < AmbientTemp {
				t++
				if t > AmbientTemp {
					t = AmbientTemp
				}
			}
			w.SetTemperature(x, y, t)
		}
	}
}
