package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustNext draws one sample, failing the test on error.
func mustNext(t *testing.T, g Generator) float64 {
	t.Helper()
	v, err := g.Next()
	require.NoError(t, err)
	return v
}

// requireInUnitRange draws n samples and asserts every one lies in [0, 1).
func requireInUnitRange(t *testing.T, g Generator, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		v := mustNext(t, g)
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

// scriptedSource replays a fixed list of uniform values and counts how
// many were consumed.
type scriptedSource struct {
	vals  []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v
}

// constSource always returns the same uniform value.
type constSource float64

func (s constSource) Float64() float64 { return float64(s) }
