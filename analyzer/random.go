package analyzer

import "math/rand/v2"

// RandomSource yields uniformly distributed floats in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it, which lets tests pin the sequence.
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandom returns a source backed by the runtime's global generator.
// It is safe for concurrent use.
func DefaultRandom() RandomSource {
	return globalSource{}
}

// Uniform draws from [min, max).
func Uniform(rnd RandomSource, min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}

// RandomSign returns +1 or -1 with equal probability.
func RandomSign(rnd RandomSource) float64 {
	if rnd.Float64() < 0.5 {
		return -1
	}
	return 1
}

// RandomInt draws an integer from [min, max).
func RandomInt(rnd RandomSource, min, max int64) int64 {
	if max <= min {
		return min
	}
	n := min + int64(rnd.Float64()*float64(max-min))
	if n >= max {
		n = max - 1
	}
	return n
}
