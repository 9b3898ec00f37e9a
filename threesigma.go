package prng

// NormalOption configures the normal-family generators (ThreeSigma,
// Polar).
type NormalOption func(*normalConfig)

type normalConfig struct {
	src Uniform
}

// WithSource supplies the uniform source feeding the generator. The
// default is a fresh wall-clock-seeded source per instance; tests inject
// a deterministic one.
func WithSource(src Uniform) NormalOption {
	return func(c *normalConfig) {
		c.src = src
	}
}

// ThreeSigma approximates a normal distribution by summing twelve
// uniform draws. The sum has mean 6 and variance 1 (each draw
// contributes 1/12), so
//
//	mean + (sum − 6)·stddev
//
// is approximately N(mean, stddev²) by the central limit theorem. This
// is the Irwin–Hall approximation, not exact Gaussian sampling: the
// tails are truncated at ±6 standard deviations.
type ThreeSigma struct {
	mean, stddev float64
	src          Uniform
}

// NewThreeSigma returns a generator targeting the given mean and
// standard deviation.
func NewThreeSigma(mean, stddev float64, opts ...NormalOption) *ThreeSigma {
	cfg := normalConfig{src: timeSource()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ThreeSigma{mean: mean, stddev: stddev, src: cfg.src}
}

// Next returns one approximately normal sample, consuming exactly twelve
// uniform draws.
func (g *ThreeSigma) Next() (float64, error) {
	sum := 0.0
	for i := 0; i < 12; i++ {
		sum += g.src.Float64()
	}
	return g.mean + (sum-6)*g.stddev, nil
}
