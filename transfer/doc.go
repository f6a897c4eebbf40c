// Package transfer maps an equipment node's input streams to its output
// streams, polymorphically over the equipment kind.
//
// What
//
//   - Mixer: sums all input flows and per-component masses, then splits the
//     combined stream across output ports by configured fractions (equal
//     split when unset). Output totals equal input totals times the split
//     fraction, which is closure by construction.
//   - Flotation (rougher/cleaner/recleaner): two outputs, concentrate and
//     tailing. Concentrate component mass = feed mass × recovery;
//     tailing = feed − concentrate, never independently computed. Bulk flow
//     uses the mass-pull heuristic and class-convention solids percents.
//   - Crusher/Mill: flow and composition pass through unchanged; particle
//     size drops to the configured target, or halves by default.
//   - Unknown kind: pure pass-through by value copy (no aliasing).
//
// Why
//
//	These are the "transfer functions" the iterative solver runs once per
//	equipment per iteration. They guarantee local mass closure so the
//	circuit-level closure stage only has to reconcile boundary totals.
//
// Heuristic constants
//
//	Mass pull to concentrate (30%), concentrate solids (65%), tailing
//	solids (35%) and the default recovery (85%) are acknowledged empirical
//	placeholders, named in types.go so they can be validated or replaced
//	independently.
//
// Edge cases
//
//	Zero input streams return an empty result; a node with no connected
//	feed is simply skipped for that iteration. Apply never fails.
package transfer
