package prng

// LinearCongruential is the classic congruential recurrence
//
//	x ← (a·x + c) mod m
//
// returning x/m on each step. Both operations use widened intermediates,
// so any (m, a, c) representable in uint64 is safe from overflow. The
// period is bounded by m.
type LinearCongruential struct {
	m, a, c, x uint64
}

// NewLinearCongruential returns a generator with modulus m, multiplier a,
// increment c and initial state seed (reduced mod m). m must be nonzero.
func NewLinearCongruential(m, a, c, seed uint64) (*LinearCongruential, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}
	return &LinearCongruential{m: m, a: a, c: c, x: seed % m}, nil
}

// Next advances the recurrence and returns x/m in [0, 1).
func (g *LinearCongruential) Next() (float64, error) {
	g.x = addMod(mulMod(g.a, g.x, g.m), g.c, g.m)
	return float64(g.x) / float64(g.m), nil
}
