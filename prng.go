// Package prng implements a family of pluggable pseudo-random number
// generators behind a single sampling interface. The uniform family
// (LinearCongruential, QuadraticCongruential, Fibonacci,
// InverseCongruential and the difference Combine over any two of them)
// produces float64 samples in [0, 1); the normal family (ThreeSigma,
// Polar) produces approximately normal samples.
//
// Generators are mutable, single-threaded objects: Next advances the
// internal state in place and must not be called concurrently on the
// same instance without external synchronization. No internal locking
// is provided.
package prng

import (
	"errors"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

var (
	// ErrInvalidModulus indicates a generator was constructed with a zero
	// modulus, or with one too wide for the generator's arithmetic (see
	// NewInverseCongruential).
	ErrInvalidModulus = errors.New("prng: invalid modulus")
	// ErrNotInvertible indicates the inverse generator reached a state with
	// no modular inverse (zero, or not coprime with the modulus).
	ErrNotInvertible = errors.New("prng: state is not invertible modulo p")
)

// Generator produces a stream of pseudo-random samples.
type Generator interface {
	// Next advances the generator and returns the next sample.
	Next() (float64, error)
}

// Uniform is a source of uniformly distributed samples in [0, 1). It is
// consumed by the normal-family generators; *rand.Rand from math/rand/v2
// satisfies it.
type Uniform interface {
	Float64() float64
}

var seedCounter atomic.Uint64

// timeSource returns a fresh wall-clock-seeded source. The counter keeps
// streams distinct even when two constructions land on the same clock
// tick.
func timeSource() Uniform {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, seedCounter.Add(1)^0x9e3779b97f4a7c15))
}
