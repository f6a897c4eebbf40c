// Package closure thresholds and options.
package closure

// RelativeImbalanceThreshold triggers a forced overwrite of the
// non-authoritative side when |out/in − 1| exceeds it (1%).
const RelativeImbalanceThreshold = 0.01

// NormalizationTolerance (absolute, percentage points) is how far a grade
// total may drift from 100 before Normalize rescales it.
const NormalizationTolerance = 0.01

// Options configures the closure pass.
type Options struct {
	// Threshold is the relative imbalance that triggers a correction.
	Threshold float64
	// NormTolerance is the grade-total drift that triggers normalization.
	NormTolerance float64
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		Threshold:     RelativeImbalanceThreshold,
		NormTolerance: NormalizationTolerance,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithThreshold overrides the imbalance trigger (t > 0).
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Threshold = t
		}
	}
}
