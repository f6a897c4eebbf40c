// Package solve is the iterative mass-balance solver: it orchestrates
// propagation, closure, equipment transfer, and normalization until the
// circuit's boundary error falls below tolerance or the iteration cap is
// reached.
//
// State machine
//
//	propagating → iterating → converged | exhausted
//
// Each iteration:
//  1. closure.Close: reconcile boundary totals against stale data,
//  2. transfer.Apply per equipment (list order by default), results
//     written back into the working set by stream ID,
//  3. closure.Close again: absorb any fresh imbalance the transfer
//     functions introduced,
//  4. closure.NormalizeAll: grades back to Σ=100,
//  5. per-component and bulk boundary error; converged when the worst
//     error (%) drops below Tolerance.
//
// Both terminal states return the current stream set: exhausted is a
// diagnostic flag (Converged=false), never an error. The only error Solve
// can return is ErrNilFlowsheet.
//
// Processing order
//
//	Equipment are processed in flowsheet list order each iteration, which
//	can make convergence order-sensitive for deep circuits. That behavior
//	is kept as the default; WithTopologicalOrder opts in to an
//	upstream-first sweep (recirculating edges tolerated).
//
// Concurrency & resources
//
//	Solve is synchronous and single-threaded, with no suspension points
//	and no cancellation; the iteration cap is the only bound on run
//	duration. It operates on a private clone of the stream set, so
//	concurrent Solve calls over different (or even the same) flowsheet do
//	not interfere.
//
// Logging
//
//	WithLogger attaches a *zap.Logger; the solver reports per-iteration
//	worst error at Debug and the terminal state at Info. Default is a nop
//	logger.
package solve
