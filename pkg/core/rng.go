package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Derive returns an independent generator for the given stream of the same
// seed. Stream 0 replays Source from the start.
func (r *RNG) Derive(stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(r.seed), stream))
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
