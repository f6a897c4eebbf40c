// Package sim options and report records.
package sim

import (
	"errors"

	"go.uber.org/zap"

	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/solve"
)

// ErrNilFlowsheet indicates Run was called with a nil flowsheet.
var ErrNilFlowsheet = errors.New("sim: flowsheet is nil")

// EquipmentResult is the per-unit summary line of a run.
type EquipmentResult struct {
	EquipmentID string
	Kind        core.EquipmentKind
	// FeedRate is the combined input flow, t/h.
	FeedRate float64
	// ProductSize is the first output's particle size, mm (0 if unknown).
	ProductSize float64
	// PowerDraw is the estimated or rated power, kW. Zero for units without
	// a power model.
	PowerDraw float64
}

// Report is the full outcome of a run.
type Report struct {
	// Iterative holds the reconciliation diagnostics. Nil in simplified
	// mode (no active components).
	Iterative *solve.IterativeResult

	// Streams is the computed stream set (clones).
	Streams []*core.Stream

	// Detailed is the derived view of Streams.
	Detailed []*core.DetailedStream

	// Coherence is the plausibility scan of Streams.
	Coherence []string

	// Equipment lists per-unit figures in flowsheet order.
	Equipment []EquipmentResult
}

// Options configures Run.
type Options struct {
	// Solve passes through to the iterative solver; ignored in simplified
	// mode.
	Solve []solve.Option
	// Logger receives run-level diagnostics; nil means nop.
	Logger *zap.Logger
}

// DefaultOptions returns the standard run settings.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Option mutates Options.
type Option func(*Options)

// WithSolveOptions forwards options to the iterative solver.
func WithSolveOptions(opts ...solve.Option) Option {
	return func(o *Options) { o.Solve = append(o.Solve, opts...) }
}

// WithLogger attaches a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
