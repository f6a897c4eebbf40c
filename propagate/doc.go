// Package propagate fills missing stream attributes before balancing, so
// the solver always has something non-zero to work with.
//
// What
//
//   - Forward: a feed into equipment E donates its data to E's outputs that
//     lack flow or grades (particle size copied unchanged).
//   - Backward: a product of E donates its data to E's inputs that lack
//     data; particle size is doubled on the backward copy, since products
//     are typically finer than feeds (a heuristic, not a physical law).
//   - Streams with no assay default to every active component at its
//     DefaultGrade, renormalized to sum to exactly 100.
//   - Zero flow is estimated from sibling inputs of the same equipment, or
//     DefaultFlowRate as the last resort.
//
// Only absent attributes are filled; data the stream already carries is
// never overwritten, which makes the pass idempotent: running Propagate on
// its own output reports zero changes.
//
// Why
//
//	Flowsheets arrive with partial, inconsistent, or missing data. This
//	stage never fails; it produces a fully populated stream set using
//	increasingly weak defaults, and leaves reconciliation to closure.
//
// Termination
//
//	Up to MaxPasses passes (default 10) over all streams; stops early when
//	a pass changes nothing. Hitting the cap is accepted silently; it only
//	means some streams retain defaults.
//
// Usage
//
//	streams, stats := propagate.Propagate(fs.Streams, fs.ActiveComponents())
//	// stats.Passes, stats.Changes
//
// Propagate clones the input streams; the caller's snapshot is untouched.
package propagate
