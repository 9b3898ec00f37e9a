package prng

// Combine derives a stream from the difference of two generators:
//
//	d ← X.Next() − Y.Next();  if d < 0 { d += 1 }
//
// Subtracting two independent uniform streams and wrapping into [0, 1)
// decorrelates shared structure between congruential sequences, the
// classical combined-generator technique. The output stays in [0, 1)
// whenever both inputs do.
//
// Combine holds X and Y as interface values and does not own them; the
// caller keeps them alive and decides whether sharing an instance
// between a Combine and another consumer is acceptable (the two callers
// then split one underlying sequence). Aliasing X and Y to the *same*
// instance is likewise not guarded against: the operands split one
// stream, so each output is the wrapped difference of two consecutive
// draws of the shared operand — correlated, and a constant 0 when that
// operand is stateless.
type Combine struct {
	x, y Generator
}

// NewCombine wraps two already-constructed generators. Either operand
// may itself be a Combine.
func NewCombine(x, y Generator) *Combine {
	return &Combine{x: x, y: y}
}

// Next draws once from X, then once from Y, and returns the wrapped
// difference. Errors from either operand are returned as is.
func (g *Combine) Next() (float64, error) {
	x, err := g.x.Next()
	if err != nil {
		return 0, err
	}
	y, err := g.y.Next()
	if err != nil {
		return 0, err
	}
	d := x - y
	if d < 0 {
		d++
	}
	return d, nil
}
