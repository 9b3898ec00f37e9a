package prng

import "math"

// Polar generates standard-normal samples with the Box–Muller polar
// method: rejection-sample a point (v1, v2) strictly inside the unit
// disk (origin excluded), then map it to two independent normals
// without trigonometry. The second value of each pair is cached, so
// calls alternate between generating a fresh pair (two or more uniform
// draws) and returning the cached half (no draws at all).
type Polar struct {
	src     Uniform
	cached  float64
	pending bool
}

// NewPolar returns a standard-normal generator.
func NewPolar(opts ...NormalOption) *Polar {
	cfg := normalConfig{src: timeSource()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Polar{src: cfg.src}
}

// Next returns one standard-normal sample.
func (g *Polar) Next() (float64, error) {
	if g.pending {
		g.pending = false
		return g.cached, nil
	}
	var v1, v2, s float64
	for {
		v1 = 2*g.src.Float64() - 1
		v2 = 2*g.src.Float64() - 1
		s = v1*v1 + v2*v2
		// s == 0 and s >= 1 both degenerate the transform factor.
		if s > 0 && s < 1 {
			break
		}
	}
	r := math.Sqrt(-2 * math.Log(s) / s)
	g.cached = v2 * r
	g.pending = true
	return v1 * r, nil
}
