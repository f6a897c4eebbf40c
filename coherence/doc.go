// Package coherence performs the post-run physical-plausibility scan:
// a non-mutating pass over final streams producing an ordered list of
// human-readable findings.
//
// Findings
//
//   - ERROR: a component grade below 0% or above 100%.
//   - ERROR: solids percent outside [0,100], or non-positive density.
//   - WARNING: total active-component grade off 100 by more than
//     GradeSumTolerance. Normalization should prevent this, but it is
//     re-checked independently because normalization skips zero-total
//     streams.
//
// A clean scan emits the single success marker OKMarker.
//
// Coherence is independent of mass closure: a perfectly closed circuit can
// still carry impossible grades (and vice versa). The engine never rejects
// or halts on incoherent values; it reports them after the fact.
package coherence
