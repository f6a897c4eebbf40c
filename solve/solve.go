// File: solve.go
// Role: the convergence loop (propagate → [close → transfer → close →
// normalize → error check] → converged|exhausted).
//
// Design principles:
//   - Snapshot in, snapshot out: the caller's flowsheet is never mutated.
//   - Always answers: every run ends in a terminal state with streams and
//     diagnostics; exhausted is a flag, not an error.
//   - Deterministic: list-order sweeps, no map-iteration effects.

package solve

import (
	"math"

	"go.uber.org/zap"

	"github.com/minproc/flowbal/closure"
	"github.com/minproc/flowbal/coherence"
	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/propagate"
	"github.com/minproc/flowbal/transfer"
)

// Solve reconciles the flowsheet's streams and returns the run diagnostics.
// The only possible error is ErrNilFlowsheet; every data condition is
// handled by defaults or corrective redistribution.
func Solve(fs *core.Flowsheet, opts ...Option) (*Result, error) {
	if fs == nil {
		return nil, ErrNilFlowsheet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	// Stage 1 - propagating: fill gaps so the balance has data to chew on.
	propagated, stats := propagate.Propagate(fs.Streams, fs.Components)
	log.Debug("propagation complete",
		zap.Int("passes", stats.Passes),
		zap.Int("changes", stats.Changes))

	// The working set is a second clone: Result.Propagated stays pristine.
	working := core.CloneStreams(propagated)
	detailed := core.DetailAll(working, fs.Components)
	index := make(map[string]int, len(working))
	for i, s := range working {
		index[s.ID] = i
	}

	order := sweepOrder(fs, o)
	active := fs.ActiveComponents()

	res := &Result{
		IterativeResult: IterativeResult{State: StateIterating},
		Streams:         working,
		Detailed:        detailed,
		Propagated:      propagated,
	}

	// Stage 2 - iterating.
	for it := 1; it <= o.MaxIterations; it++ {
		res.Iterations = it

		// 2a. Reconcile boundary totals against whatever the last pass left.
		closure.Close(detailed, fs.Components)

		// 2b. Run every transfer function, writing back by stream ID.
		// Later equipment intentionally see earlier updates within a sweep.
		for _, eq := range order {
			ins := core.InputsOf(working, eq.ID)
			outs := core.OutputsOf(working, eq.ID)
			for _, computed := range transfer.Apply(eq, ins, outs) {
				i, ok := index[computed.ID]
				if !ok {
					continue
				}
				working[i].CopyDataFrom(computed)
				detailed[i].Refresh(fs.Components)
			}
		}

		// 2c. Absorb any fresh imbalance the transfer functions introduced.
		closure.Close(detailed, fs.Components)

		// 2d. Grades back to Σ=100.
		closure.NormalizeAll(detailed, fs.Components)

		// 2e. Boundary errors and the convergence test.
		res.ComponentErrors, res.GlobalError, res.MaxError = boundaryErrors(detailed, active)
		log.Debug("iteration complete",
			zap.Int("iteration", it),
			zap.Float64("max_error_pct", res.MaxError))

		if res.MaxError < o.Tolerance {
			res.Converged = true
			res.State = StateConverged
			break
		}
	}
	if !res.Converged {
		res.State = StateExhausted
	}

	// Stage 3 - post-run plausibility scan.
	res.Coherence = coherence.Check(working, fs.Components)

	log.Info("solve finished",
		zap.String("state", res.State.String()),
		zap.Int("iterations", res.Iterations),
		zap.Float64("max_error_pct", res.MaxError))

	return res, nil
}

// sweepOrder resolves the per-iteration equipment order: flowsheet list
// order by default, upstream-first when requested.
func sweepOrder(fs *core.Flowsheet, o Options) []*core.Equipment {
	if !o.TopologicalOrder {
		return fs.Equipment
	}
	ids, err := fs.TopologicalOrder()
	if err != nil {
		return fs.Equipment
	}

	order := make([]*core.Equipment, 0, len(ids))
	for _, id := range ids {
		if eq := fs.EquipmentByID(id); eq != nil {
			order = append(order, eq)
		}
	}

	return order
}

// boundaryErrors computes |in − out| / in × 100 per active component and
// for bulk flow. A side with zero input but non-zero output counts as a
// full 100% error; both-zero counts as balanced.
func boundaryErrors(streams []*core.DetailedStream, active []*core.MineralComponent) (map[string]float64, float64, float64) {
	errs := make(map[string]float64, len(active))
	maxErr := 0.0
	for _, c := range active {
		in, out := closure.ComponentTotals(streams, c.ID)
		e := relativeError(in, out)
		errs[c.ID] = e
		maxErr = math.Max(maxErr, e)
	}

	in, out := closure.BulkTotals(streams)
	global := relativeError(in, out)
	maxErr = math.Max(maxErr, global)

	return errs, global, maxErr
}

// relativeError returns the boundary error in percent.
func relativeError(in, out float64) float64 {
	switch {
	case in > 0:
		return math.Abs(in-out) / in * 100
	case out > 0:
		return 100
	default:
		return 0
	}
}
