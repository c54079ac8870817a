package core

import "math/rand/v2"

// Rand is the randomness source consumed by the simulation rules. The
// production implementation is RNG; tests substitute scripted sequences to
// pin down probability-gated branches.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance performs a 1-in-n draw.
func Chance(r Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return r.IntN(n) == 0
}

// Dir returns a random horizontal direction, -1 or +1.
func Dir(r Rand) int {
	if r.IntN(2) == 1 {
		return 1
	}
	return -1
}
