// Package closure reconciles circuit-level totals: whatever enters the
// flowsheet boundary must leave it, in bulk and per mineral component.
//
// What
//
//	Transfer functions preserve mass only locally, and propagated data may
//	be stale or contradictory, so after each transfer sweep the boundary is
//	re-imposed: feed-class streams (no upstream equipment) are compared
//	against product-class streams (no downstream equipment).
//
//	Per component, then for bulk flow:
//	  1. If the input total is positive and the output total is zero, or
//	     deviates from the input by more than RelativeImbalanceThreshold,
//	     the input is ground truth: its total is distributed EQUALLY across
//	     the populated output streams (equal split is the tie-break policy;
//	     existing proportions carry no weight).
//	  2. If only the output side has data, the correction runs in reverse
//	     (covers circuits where only product assays are known).
//	  3. Both sides zero: nothing to correct this pass.
//
//	The closure is directional and asymmetric by design: whichever side has
//	data becomes authoritative, and when both disagree the input wins:
//	outputs are overwritten, never averaged.
//
// Normalization
//
//	Normalize rescales a stream's active-component grades proportionally to
//	sum to exactly 100 when they are off by more than
//	NormalizationTolerance, recomputing absolute masses from the rescaled
//	grades and the stored solid flow. A zero grade total is left alone
//	(there is nothing to rescale).
//
// All functions operate on DetailedStream views and write corrections
// through to the underlying streams. Nothing here ever fails.
package closure
