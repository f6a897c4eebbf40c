// Package core defines the central Flowsheet, Equipment, Stream, and
// MineralComponent types, plus the derived DetailedStream view used by
// the balance engine during a run.
//
// What
//
//   - MineralComponent: a tracked mineral species (grade balanced independently).
//   - Equipment: a circuit node with a fixed Kind and kind-specific Params.
//   - Stream: a directed flow line; empty From marks a circuit feed, empty To
//     marks a circuit product.
//   - Flowsheet: an immutable-by-convention snapshot of equipment, streams,
//     and components, with topology queries and cloning.
//   - DetailedStream: per-run derived view adding solid flow, water flow,
//     volumetric flow, and absolute per-component mass.
//
// Why
//
//	Every engine stage (propagation, transfer, closure, solving, coherence)
//	operates on these records. The engine clones streams at run entry, so a
//	Flowsheet you hold is never mutated by a simulation.
//
// Determinism
//
//	Topology queries return streams in Flowsheet list order, and
//	TopologicalOrder breaks ties by list position, so every traversal is
//	fully reproducible.
//
// Errors
//
//   - ErrNilFlowsheet     if a nil snapshot is passed to a query helper.
//   - ErrStreamNotFound   if a stream ID lookup fails.
//   - ErrUnknownEquipment if a stream references an equipment ID not present.
package core
