package prng

// QuadraticCongruential extends the linear recurrence with a quadratic
// term:
//
//	x ← (d·x² + a·x + c) mod m
//
// The x² product overflows 64 bits for most useful moduli, so every
// product goes through the widened modular multiply.
type QuadraticCongruential struct {
	m, a, c, d, x uint64
}

// NewQuadraticCongruential returns a generator with modulus m, linear
// multiplier a, increment c, quadratic coefficient d and initial state
// seed (reduced mod m). m must be nonzero.
func NewQuadraticCongruential(m, a, c, d, seed uint64) (*QuadraticCongruential, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}
	return &QuadraticCongruential{m: m, a: a, c: c, d: d, x: seed % m}, nil
}

// Next advances the recurrence and returns x/m in [0, 1).
func (g *QuadraticCongruential) Next() (float64, error) {
	sq := mulMod(g.x, g.x, g.m)
	t := addMod(mulMod(g.d, sq, g.m), mulMod(g.a, g.x, g.m), g.m)
	g.x = addMod(t, g.c, g.m)
	return float64(g.x) / float64(g.m), nil
}
