// Package sim is the one-call front door: it runs a flowsheet end to end
// and returns a plant-style report.
//
// Two modes, selected by the component library:
//
//   - Iterative: at least one active component. Full reconciliation via
//     solve.Solve, with its diagnostics attached to the report.
//   - Simplified: no active components to balance, so a single transfer
//     sweep in flowsheet order computes the streams. Report.Iterative is
//     nil in this mode.
//
// Either way the report carries per-equipment figures (feed rate, product
// size, power draw from the Bond formulas in calc) and the coherence scan.
//
// The caller's flowsheet is never mutated.
package sim
