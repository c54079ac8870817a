package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fallingsand/internal/sim"
)

func TestTakeCountsParticles(t *testing.T) {
	w := sim.New(10, 10)
	w.Set(3, 3, sim.Sand)
	w.Set(4, 3, sim.Sand)
	w.Set(5, 3, sim.Water)
	w.Set(6, 3, sim.Lava)
	w.SetTemperature(6, 3, 1000)

	c := Take(w, 7)

	if c.Tick != 7 {
		t.Errorf("Tick = %d, want 7", c.Tick)
	}
	if c.Sand != 2 {
		t.Errorf("Sand = %d, want 2", c.Sand)
	}
	if c.Water != 1 {
		t.Errorf("Water = %d, want 1", c.Water)
	}
	if c.Lava != 1 {
		t.Errorf("Lava = %d, want 1", c.Lava)
	}
	// 10x10 enclosure: two full rows plus the wall columns.
	if c.Stone != 36 {
		t.Errorf("Stone = %d, want 36", c.Stone)
	}
	if c.TempMax != 1000 {
		t.Errorf("TempMax = %d, want 1000", c.TempMax)
	}
	if c.TempMean <= sim.AmbientTemp {
		t.Errorf("TempMean = %f, want above ambient", c.TempMean)
	}
}

func TestTakeEmptyWorld(t *testing.T) {
	w := sim.New(6, 6)
	c := Take(w, 0)
	if c.TempMean != sim.AmbientTemp || c.TempMax != sim.AmbientTemp {
		t.Errorf("empty world temps = %f/%d, want ambient", c.TempMean, c.TempMax)
	}
}

func TestWriterHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	wr, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := wr.Write(Census{Tick: 1, Sand: 5}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wr.Write(Census{Tick: 2, Sand: 4}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "census.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("census.csv has %d lines, want header plus 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "tick,") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.HasPrefix(lines[1], "tick") || strings.HasPrefix(lines[2], "tick") {
		t.Error("header repeated in data rows")
	}
}

func TestNilWriterDiscards(t *testing.T) {
	wr, err := NewWriter("")
	if err != nil {
		t.Fatalf("NewWriter(\"\"): %v", err)
	}
	if wr != nil {
		t.Fatal("empty dir should disable output")
	}
	if err := wr.Write(Census{}); err != nil {
		t.Errorf("nil writer Write: %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Errorf("nil writer Close: %v", err)
	}
}
