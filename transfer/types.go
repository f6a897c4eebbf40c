// Package transfer heuristic constants and options.
package transfer

// DefaultMassPull is the bulk mass fraction reporting to concentrate when
// a flotation cell does not configure one. Empirical placeholder.
const DefaultMassPull = 0.30

// DefaultConcentrateSolids / DefaultTailingSolids fix the solids percent of
// the two flotation product classes by convention.
const (
	DefaultConcentrateSolids = 65.0
	DefaultTailingSolids     = 35.0
)

// DefaultRecovery (%) applies to components with neither a per-component
// override nor a scalar recovery on the equipment.
const DefaultRecovery = 85.0

// SizeReductionFactor divides the feed particle size when a comminution
// stage has no explicit target size.
const SizeReductionFactor = 2.0

// Options overrides the package defaults for one Apply call. Equipment
// parameters always take precedence over these.
type Options struct {
	MassPull            float64
	ConcentrateSolids   float64
	TailingSolids       float64
	Recovery            float64
	SizeReductionFactor float64
}

// DefaultOptions returns the standard heuristics.
func DefaultOptions() Options {
	return Options{
		MassPull:            DefaultMassPull,
		ConcentrateSolids:   DefaultConcentrateSolids,
		TailingSolids:       DefaultTailingSolids,
		Recovery:            DefaultRecovery,
		SizeReductionFactor: SizeReductionFactor,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMassPull overrides the default flotation mass pull (0 < f < 1).
func WithMassPull(f float64) Option {
	return func(o *Options) {
		if f > 0 && f < 1 {
			o.MassPull = f
		}
	}
}

// WithRecovery overrides the default scalar recovery (%).
func WithRecovery(r float64) Option {
	return func(o *Options) {
		if r > 0 && r <= 100 {
			o.Recovery = r
		}
	}
}
