package core

import "math/rand/v2"

// Source is the randomness consumed by the geometry and grid packages.
type Source interface {
	Uint64N(n uint64) uint64
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// The PCG source is pinned so a seed yields the same stream on every platform.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Uint64N returns a random uint64 in [0, n). It returns 0 when n == 0.
func (r *RNG) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return r.r.Uint64N(n)
}

// Int64 returns a non-negative random int64. The height layout draws its
// Perlin seed from it.
func (r *RNG) Int64() int64 {
	return r.r.Int64()
}
