package prng

// Fibonacci is an additive lagged generator over two registers:
//
//	next ← (x1 + x2) mod m;  x1 ← x2;  x2 ← next
//
// The registers start at (0, 1). A nonzero seed replaces x1 only, so
// seed 0 always yields the canonical sequence from state (0, 1) and
// seed k starts from (k, 1). The asymmetry is deliberate.
type Fibonacci struct {
	m, x1, x2 uint64
}

// NewFibonacci returns a generator with modulus m and the seeding rule
// above. m must be nonzero.
func NewFibonacci(m, seed uint64) (*Fibonacci, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}
	g := &Fibonacci{m: m, x1: 0, x2: 1 % m}
	if seed != 0 {
		g.x1 = seed % m
	}
	return g, nil
}

// Next advances both registers and returns the new value divided by m.
func (g *Fibonacci) Next() (float64, error) {
	next := addMod(g.x1, g.x2, g.m)
	g.x1, g.x2 = g.x2, next
	return float64(next) / float64(g.m), nil
}
