package random

import "math/rand/v2"

// NewSeededSource returns a PCG-backed generator. Equal seeds produce equal draw sequences
// for a given Go release of math/rand/v2.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
