package sim

import "testing"

func TestPaintCircle(t *testing.T) {
	w := testWorld(16, 16)
	w.Paint(8, 5, Sand, 2)

	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := 8+dx, 5+dy
			want := Empty
			if dx*dx+dy*dy <= 4 {
				want = Sand
			}
			if got := w.Get(x, y); got != want {
				t.Fatalf("cell (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPaintRespectsBoundary(t *testing.T) {
	w := testWorld(16, 16)
	w.Paint(0, 5, Sand, 3)

	for y := 0; y < 16; y++ {
		if got := w.Get(0, y); got != Stone {
			t.Fatalf("wall cell (0, %d) = %v, want Stone", y, got)
		}
	}
	// The in-bounds part of the circle still lands.
	if got := w.Get(1, 5); got != Sand {
		t.Fatalf("cell (1, 5) = %v, want Sand", got)
	}
}

func TestPaintOverOccupied(t *testing.T) {
	w := testWorld(16, 16)
	w.Set(8, 5, Water)
	w.Set(9, 5, Steam)

	w.Paint(8, 5, Sand, 0)
	if got := w.Get(8, 5); got != Water {
		t.Errorf("paint overwrote water: %v", got)
	}

	w.Paint(9, 5, Sand, 0)
	if got := w.Get(9, 5); got != Sand {
		t.Errorf("paint should replace steam, got %v", got)
	}

	w.Paint(8, 5, Empty, 0)
	if got := w.Get(8, 5); got != Empty {
		t.Errorf("erase failed over water: %v", got)
	}
}

func TestPaintStampsPlacementTemperature(t *testing.T) {
	cases := []struct {
		p    Particle
		want int
	}{
		{Lava, 1000},
		{Fire, 1000},
		{Ice, -10},
		{Steam, 100},
		{Sand, AmbientTemp},
		{Water, AmbientTemp},
	}
	for _, tc := range cases {
		w := testWorld(16, 16)
		w.Paint(8, 5, tc.p, 0)
		if got := w.Temperature(8, 5); got != tc.want {
			t.Errorf("%v placement temperature = %d, want %d", tc.p, got, tc.want)
		}
	}
}
