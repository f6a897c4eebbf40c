// Package balance records and sentinel errors.
package balance

import "errors"

var (
	// ErrNilFlowsheet indicates a nil flowsheet was passed.
	ErrNilFlowsheet = errors.New("balance: flowsheet is nil")

	// ErrUnknownComponent indicates the component ID is not in the
	// flowsheet's library.
	ErrUnknownComponent = errors.New("balance: unknown component")
)

// DefaultTolerance is the relative boundary error, in percent, below which
// a circuit counts as balanced.
const DefaultTolerance = 0.001

// FlowBalance is the boundary closure of one quantity (bulk flow or a
// single component's mass).
type FlowBalance struct {
	// In is the total over feed streams, t/h.
	In float64
	// Out is the total over product streams, t/h.
	Out float64
	// Absolute is |In − Out|, t/h.
	Absolute float64
	// Relative is the boundary error in percent of In. Zero input with
	// non-zero output reports a full 100%.
	Relative float64
	// Balanced reports Relative < tolerance.
	Balanced bool
}

// ComponentBalance is a FlowBalance tagged with its component.
type ComponentBalance struct {
	ComponentID string
	FlowBalance
}

// StreamRecovery is the share of the feed's component mass reporting to
// one product stream.
type StreamRecovery struct {
	StreamID string
	// Mass of the component in this stream, t/h.
	Mass float64
	// Recovery is Mass as a percentage of the feed's component mass.
	Recovery float64
	// Enrichment is this stream's grade over the combined feed grade.
	Enrichment float64
}

// RecoveryReport is the metallurgical accounting of one component across
// all product streams.
type RecoveryReport struct {
	ComponentID string
	// FeedMass is the component's total mass entering the circuit, t/h.
	FeedMass float64
	// FeedGrade is the solids-weighted grade of the combined feed, %.
	FeedGrade float64
	// Streams lists product streams in flowsheet order.
	Streams []StreamRecovery
}

// Result aggregates a full circuit analysis.
type Result struct {
	Global     FlowBalance
	Components []ComponentBalance
	Recoveries []RecoveryReport
}

// Options configures the analysis.
type Options struct {
	// Tolerance is the balanced threshold, %; values ≤ 0 fall back to the
	// default.
	Tolerance float64
}

// DefaultOptions returns the standard analysis settings.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance overrides the balanced threshold (t > 0, %).
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Tolerance = t
		}
	}
}
