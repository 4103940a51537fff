package ports

import "math/rand/v2"

// RandomSource yields uniformly distributed floats in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
// Implementations are not expected to be safe for concurrent use.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source: equal seeds produce equal streams.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
