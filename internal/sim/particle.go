package sim

import "image/color"

// Particle enumerates the cell types of the falling-sand world.
type Particle uint8

const (
	Empty Particle = iota
	Sand
	Water
	Lava
	Stone
	Steam
	Ice
	Acid
	Oil
	Fire
	Smoke
	Obsidian

	numParticles
)

// particleInfo is the static per-type metadata. Nothing here is ever stored
// per cell; everything is looked up by ordinal.
type particleInfo struct {
	Name      string
	Symbol    byte
	Color     color.NRGBA
	PlaceTemp int
}

var particleTable = [numParticles]particleInfo{
	Empty:    {"Empty", ' ', color.NRGBA{0, 0, 0, 255}, AmbientTemp},
	Sand:     {"Sand", 'S', color.NRGBA{194, 178, 128, 255}, AmbientTemp},
	Water:    {"Water", 'W', color.NRGBA{64, 164, 223, 255}, AmbientTemp},
	Lava:     {"Lava", 'L', color.NRGBA{255, 100, 0, 255}, 1000},
	Stone:    {"Stone", '#', color.NRGBA{128, 128, 128, 255}, AmbientTemp},
	Steam:    {"Steam", 'T', color.NRGBA{220, 220, 220, 180}, 100},
	Ice:      {"Ice", 'I', color.NRGBA{173, 216, 230, 255}, -10},
	Acid:     {"Acid", 'A', color.NRGBA{0, 255, 0, 255}, AmbientTemp},
	Oil:      {"Oil", 'O', color.NRGBA{139, 69, 19, 255}, AmbientTemp},
	Fire:     {"Fire", 'F', color.NRGBA{255, 140, 0, 255}, 1000},
	Smoke:    {"Smoke", 'M', color.NRGBA{105, 105, 105, 200}, AmbientTemp},
	Obsidian: {"Obsidian", 'B', color.NRGBA{50, 50, 50, 255}, AmbientTemp},
}

var symbolTable = buildSymbolTable()

func buildSymbolTable() [256]Particle {
	var table [256]Particle
	for p := Particle(0); p < numParticles; p++ {
		table[particleTable[p].Symbol] = p
	}
	return table
}

// Valid reports whether p is a member of the closed particle set.
func (p Particle) Valid() bool { return p < numParticles }

// Name returns the human-readable type name.
func (p Particle) Name() string {
	if !p.Valid() {
		return "Unknown"
	}
	return particleTable[p].Name
}

// String implements fmt.Stringer.
func (p Particle) String() string { return p.Name() }

// Symbol returns the single-character serialization symbol for p.
func (p Particle) Symbol() byte {
	if !p.Valid() {
		return particleTable[Empty].Symbol
	}
	return particleTable[p].Symbol
}

// Color returns the base display color for p.
func (p Particle) Color() color.NRGBA {
	if !p.Valid() {
		return particleTable[Empty].Color
	}
	return particleTable[p].Color
}

// PlaceTemp returns the temperature stamped when p is painted onto the grid.
func (p Particle) PlaceTemp() int {
	if !p.Valid() {
		return AmbientTemp
	}
	return particleTable[p].PlaceTemp
}

// IsLiquid reports whether p flows and may displace steam when falling.
func (p Particle) IsLiquid() bool {
	return p == Water || p == Lava || p == Acid || p == Oil
}

// FromSymbol maps a serialization symbol back to its particle type.
// Unknown symbols decode as Empty.
func FromSymbol(c byte) Particle {
	return symbolTable[c]
}

// Palette exposes the base particle colors indexed by ordinal, for renderers.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, numParticles)
	for p := Particle(0); p < numParticles; p++ {
		c := particleTable[p].Color
		palette[p] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return palette
}
