package prng

import "math"

// InverseCongruential steps through the modular inverse of its state:
//
//	x ← (a·x⁻¹ + c) mod p
//
// p must be prime so that every nonzero state is invertible. A state
// with no inverse (zero, or sharing a factor with a composite p)
// surfaces as ErrNotInvertible instead of a wrong sample.
type InverseCongruential struct {
	p, a, c, x uint64
}

// NewInverseCongruential returns a generator with prime modulus p,
// multiplier a, increment c and initial state seed (reduced mod p).
// The extended-Euclid bookkeeping is signed, so p must fit in 63 bits;
// larger moduli are rejected with ErrInvalidModulus.
func NewInverseCongruential(p, a, c, seed uint64) (*InverseCongruential, error) {
	if p == 0 || p > math.MaxInt64 {
		return nil, ErrInvalidModulus
	}
	return &InverseCongruential{p: p, a: a, c: c, x: seed % p}, nil
}

// Next inverts the current state, advances the recurrence and returns
// x/p in [0, 1). It fails with ErrNotInvertible when the state has no
// inverse; the state is left unchanged in that case.
func (g *InverseCongruential) Next() (float64, error) {
	inv, err := modInverse(g.x, g.p)
	if err != nil {
		return 0, err
	}
	g.x = addMod(mulMod(g.a, inv, g.p), g.c, g.p)
	return float64(g.x) / float64(g.p), nil
}

// modInverse returns y with (x·y) mod p == 1 via the extended Euclidean
// algorithm. The Bézout coefficient goes negative partway through the
// loop, so the bookkeeping must be signed; the final correction adds p
// back. On an unsigned type the coefficient would wrap instead and the
// correction would never fire. Requires x < p and p ≤ MaxInt64.
func modInverse(x, p uint64) (uint64, error) {
	if x == 0 {
		return 0, ErrNotInvertible
	}
	t, newT := int64(0), int64(1)
	r, newR := int64(p), int64(x)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, ErrNotInvertible
	}
	if t < 0 {
		t += int64(p)
	}
	return uint64(t), nil
}
