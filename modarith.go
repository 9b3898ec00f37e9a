package prng

import "math/bits"

// mulMod returns (a * b) mod m through a full 128-bit intermediate
// product, so no (a, b, m) combination representable in uint64 can
// overflow. m must be nonzero.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// Div64 requires hi < m; reducing hi first preserves the residue.
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// addMod returns (a + b) mod m, carrying the potential 65th bit through
// Div64. m must be nonzero.
func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	_, rem := bits.Div64(carry%m, sum, m)
	return rem
}
