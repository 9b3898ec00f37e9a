// Package histogram bins a finite sample sequence into relative
// frequencies over a fixed range.
package histogram

import "errors"

var (
	// ErrInvalidIntervals indicates a non-positive bin count.
	ErrInvalidIntervals = errors.New("histogram: interval count must be positive")
	// ErrInvalidRange indicates maxRange did not exceed minRange.
	ErrInvalidRange = errors.New("histogram: max range must exceed min range")
)

// Bin is one histogram interval [Low, High] together with the share of
// samples that fell into it.
type Bin struct {
	Low       float64
	High      float64
	Frequency float64
}

// Compute splits [minRange, maxRange] into intervals equal-width bins
// and reports each bin's relative frequency. Samples are binned by
// floor((s−minRange)/width); both range ends are inclusive, and a
// sample exactly equal to maxRange lands in the last bin rather than
// overflowing past it.
//
// The frequency denominator is the total sample count, not the in-range
// count: out-of-range samples are dropped from the numerators but still
// dilute every bin, so the reported frequencies may sum to less than 1.
// Callers who want in-range normalization must filter first.
func Compute(samples []float64, minRange, maxRange float64, intervals int) ([]Bin, error) {
	if intervals <= 0 {
		return nil, ErrInvalidIntervals
	}
	if maxRange <= minRange {
		return nil, ErrInvalidRange
	}

	width := (maxRange - minRange) / float64(intervals)
	counts := make([]int, intervals)
	for _, s := range samples {
		if s < minRange || s > maxRange {
			continue
		}
		i := int((s - minRange) / width)
		if i >= intervals {
			i = intervals - 1
		}
		counts[i]++
	}

	bins := make([]Bin, intervals)
	for i := range bins {
		bins[i] = Bin{
			Low:  minRange + float64(i)*width,
			High: minRange + float64(i+1)*width,
		}
		if len(samples) > 0 {
			bins[i].Frequency = float64(counts[i]) / float64(len(samples))
		}
	}
	return bins, nil
}
