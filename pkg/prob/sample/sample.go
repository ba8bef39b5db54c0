// Package sample draws random variates from the uniform, normal, and
// exponential families. Every draw flows through a single uniform [Source]
// so callers can inject a seeded or scripted generator for deterministic
// tests; nothing in this package holds hidden random state.
package sample

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source yields uniform draws in [0, 1). Implementations are not safe for
// concurrent use; callers that share a Source across goroutines must
// serialize access.
type Source interface {
	Float64() float64
}

// NewSource returns a time-seeded Source. Reproducibility across instances
// is not guaranteed; use [NewSeededSource] when determinism matters.
func NewSource() Source {
	seed := uint64(time.Now().UnixNano())

	return rand.New(rand.NewPCG(seed, seed))
}

// NewSeededSource returns a deterministic Source for reproducible runs.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform draws one value from the uniform distribution on [minVal, maxVal).
// No parameter validation is performed; behavior for minVal > maxVal is
// undefined.
func Uniform(src Source, minVal, maxVal float64) float64 {
	return minVal + src.Float64()*(maxVal-minVal)
}

// Normal draws one value from the normal distribution with the given mean
// and standard deviation, via the Box-Muller transform over two uniform
// draws. No parameter validation is performed; behavior for a negative
// stddev is undefined.
func Normal(src Source, mean, stddev float64) float64 {
	u1 := src.Float64()
	for u1 == 0 {
		u1 = src.Float64()
	}

	u2 := src.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	return mean + stddev*z
}

// Exponential draws one value from the exponential distribution with rate
// lambda, via inverse-transform sampling. No parameter validation is
// performed; behavior for lambda <= 0 is undefined.
func Exponential(src Source, lambda float64) float64 {
	return -math.Log(1-src.Float64()) / lambda
}
