package ports

// Source of uniform pseudo-random draws used by the sampler.
// *math/rand/v2.Rand satisfies it; tests may script the draws.
type RandomSource interface {
	// Return a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Return a uniform float64 in [0.0, 1.0).
	Float64() float64
}
