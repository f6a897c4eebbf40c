// Package solve options, result records, and sentinel errors.
package solve

import (
	"errors"

	"go.uber.org/zap"

	"github.com/minproc/flowbal/core"
)

// ErrNilFlowsheet indicates Solve was called with a nil snapshot.
var ErrNilFlowsheet = errors.New("solve: flowsheet is nil")

// DefaultMaxIterations bounds the convergence loop.
const DefaultMaxIterations = 50

// DefaultTolerance is the convergence threshold on the worst boundary
// error, in percent.
const DefaultTolerance = 0.001

// State names the solver's position in its state machine.
type State int

const (
	// StatePropagating: filling gaps before the first iteration.
	StatePropagating State = iota
	// StateIterating: inside the closure→transfer→normalize loop.
	StateIterating
	// StateConverged: worst error dropped below tolerance.
	StateConverged
	// StateExhausted: iteration cap reached; diagnostic, not an error.
	StateExhausted
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StatePropagating:
		return "propagating"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// IterativeResult is the run's diagnostic summary.
type IterativeResult struct {
	// Converged reports whether the worst error passed tolerance before
	// the iteration cap.
	Converged bool

	// Iterations actually executed (≥1 when any stream exists).
	Iterations int

	// GlobalError is the bulk-flow boundary error, %.
	GlobalError float64

	// ComponentErrors maps component ID → boundary error, %.
	ComponentErrors map[string]float64

	// MaxError is the worst of GlobalError and all component errors, %.
	MaxError float64

	// State is the terminal state (StateConverged or StateExhausted).
	State State
}

// Result bundles the diagnostic summary with the reconciled streams.
type Result struct {
	IterativeResult

	// Streams is the reconciled working set (clones; the caller's
	// flowsheet is untouched).
	Streams []*core.Stream

	// Detailed is the per-run derived view of Streams.
	Detailed []*core.DetailedStream

	// Propagated is the stream set as it stood after gap-filling, before
	// any iteration. Useful for diagnosing what propagation invented.
	Propagated []*core.Stream

	// Coherence is the post-run plausibility report.
	Coherence []string
}

// Options configures Solve.
type Options struct {
	// MaxIterations caps the loop; values < 1 fall back to the default.
	MaxIterations int
	// Tolerance is the convergence threshold, %.
	Tolerance float64
	// TopologicalOrder processes equipment upstream-first instead of
	// flowsheet list order.
	TopologicalOrder bool
	// Logger receives per-iteration diagnostics; nil means nop.
	Logger *zap.Logger
}

// DefaultOptions returns the standard solver settings.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Logger:        zap.NewNop(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIterations overrides the iteration cap (n ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxIterations = n
		}
	}
}

// WithTolerance overrides the convergence threshold (t > 0, %).
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Tolerance = t
		}
	}
}

// WithTopologicalOrder switches the per-iteration sweep to upstream-first.
func WithTopologicalOrder() Option {
	return func(o *Options) { o.TopologicalOrder = true }
}

// WithLogger attaches a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
