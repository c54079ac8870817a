package sim

import "testing"

func TestDiffuseAveragesNeighbors(t *testing.T) {
	w := testWorld(9, 9)
	w.Set(3, 3, Stone)
	w.Set(4, 3, Stone)
	w.SetTemperature(3, 3, 100)

	w.diffuse()

	// (3, 3) averages with its one occupied neighbor: (100+20)/2 = 60,
	// relaxed to 59. (4, 3) is visited later in the same pass and sees the
	// updated value: (20+59)/2 = 39, relaxed to 38.
	if got := w.Temperature(3, 3); got != 59 {
		t.Errorf("Temperature(3, 3) = %d, want 59", got)
	}
	if got := w.Temperature(4, 3); got != 38 {
		t.Errorf("Temperature(4, 3) = %d, want 38", got)
	}
}

func TestDiffuseSkipsEmptyCells(t *testing.T) {
	w := testWorld(9, 9)
	w.Set(3, 3, Stone)
	w.SetTemperature(3, 3, 500)
	w.SetTemperature(4, 3, 500) // empty cell: stored value is inert

	w.diffuse()

	if got := w.Temperature(4, 3); got != 500 {
		t.Errorf("empty cell temperature changed to %d", got)
	}
	// The empty neighbor contributed nothing to the occupied cell either.
	if got := w.Temperature(3, 3); got != 499 {
		t.Errorf("Temperature(3, 3) = %d, want 499", got)
	}
}

func TestDiffuseRelaxesTowardAmbient(t *testing.T) {
	cases := []struct {
		name  string
		temp  int
		want  int
		steps int
	}{
		{"one above", 21, 20, 1},
		{"one below", 19, 20, 1},
		{"well above", 30, 29, 1},
		{"well below", 0, 1, 1},
		{"already ambient", 20, 20, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld(9, 9)
			w.Set(3, 3, Stone)
			w.SetTemperature(3, 3, tc.temp)
			for i := 0; i < tc.steps; i++ {
				w.diffuse()
			}
			if got := w.Temperature(3, 3); got != tc.want {
				t.Errorf("temperature %d relaxed to %d, want %d", tc.temp, got, tc.want)
			}
		})
	}
}

func TestDiffuseLeavesEnclosureAtAmbient(t *testing.T) {
	w := testWorld(9, 9)
	w.Set(1, 3, Stone)
	w.SetTemperature(1, 3, 500)
	w.Set(4, 6, Stone)
	w.SetTemperature(4, 6, 500)

	w.diffuse()

	// The walls never heat up, whatever sits next to them.
	for _, c := range []struct{ x, y int }{{0, 2}, {0, 3}, {0, 4}, {3, 7}, {4, 7}, {5, 7}} {
		if got := w.Temperature(c.x, c.y); got != AmbientTemp {
			t.Errorf("wall (%d, %d) temperature = %d, want %d", c.x, c.y, got, AmbientTemp)
		}
	}
	// The hot cells still cool against the ambient walls they border.
	if got := w.Temperature(1, 3); got != 139 {
		t.Errorf("Temperature(1, 3) = %d, want 139", got)
	}
}

func TestHotLavaEventuallySolidifies(t *testing.T) {
	// An isolated lava cell loses one degree per tick; it must become stone
	// the moment it drops under the solidify threshold, not before.
	cfg := DefaultConfig()
	cfg.Width = 9
	cfg.Height = 9
	w := NewWithConfig(cfg)
	w.Set(4, 2, Lava)
	w.SetTemperature(4, 2, 505)
	// Pin it in place so cooling is the only effect.
	w.Set(4, 3, Stone)
	w.Set(3, 3, Stone)
	w.Set(5, 3, Stone)
	w.Set(3, 2, Stone)
	w.Set(5, 2, Stone)

	solidified := -1
	for tick := 1; tick <= 30; tick++ {
		stepOnce(t, w)
		if w.Get(4, 2) == Stone {
			solidified = tick
			break
		}
		if got := w.Get(4, 2); got != Lava {
			t.Fatalf("tick %d: lava became %v", tick, got)
		}
	}
	if solidified < 0 {
		t.Fatal("lava never solidified")
	}
}
