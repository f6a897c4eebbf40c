// Package propagate options and heuristic constants.
package propagate

// DefaultMaxPasses bounds the number of passes over the stream set.
const DefaultMaxPasses = 10

// DefaultFlowRate (t/h) is the last-resort flow estimate for a stream with
// no data and no siblings to borrow from.
const DefaultFlowRate = 100.0

// BackwardSizeFactor scales particle size when copying from a product
// backward to a feed: products are typically finer than what fed them.
const BackwardSizeFactor = 2.0

// Stats summarizes one Propagate run.
type Stats struct {
	// Passes actually executed (≥1, ≤ MaxPasses).
	Passes int
	// Changes is the total number of attribute fills across all passes.
	// Zero means the input was already a fixed point.
	Changes int
}

// Options configures Propagate.
type Options struct {
	// MaxPasses caps the pass count; values < 1 fall back to the default.
	MaxPasses int
	// DefaultFlow is the last-resort flow estimate (t/h).
	DefaultFlow float64
}

// DefaultOptions returns the standard propagation settings.
func DefaultOptions() Options {
	return Options{
		MaxPasses:   DefaultMaxPasses,
		DefaultFlow: DefaultFlowRate,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxPasses overrides the pass cap (n ≥ 1).
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxPasses = n
		}
	}
}

// WithDefaultFlow overrides the last-resort flow estimate.
func WithDefaultFlow(f float64) Option {
	return func(o *Options) {
		if f > 0 {
			o.DefaultFlow = f
		}
	}
}
