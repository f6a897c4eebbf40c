// Package flowbal is a steady-state mass-balance engine for
// mineral-processing flowsheets — draw a circuit of crushers, mills,
// mixers and flotation cells, attach whatever stream data you have,
// and get back a self-consistent set of flows and mineral grades.
//
// 🚀 What is flowbal?
//
//	A pure-library reconciliation engine that brings together:
//		• Core model: equipment, streams, mineral components, flowsheet snapshots
//		• Propagation: heuristic gap-filling of missing stream attributes
//		• Transfer: per-equipment-type mass transfer functions
//		• Closure: circuit-level conservation of mass, bulk and per component
//		• Solve: bounded iterative convergence with full diagnostics
//		• Coherence: post-run physical-plausibility reporting
//		• Balance: one-shot validation and metallurgical recovery metrics
//
// ✨ Why choose flowbal?
//
//   - Always answers — missing or contradictory data is repaired, never fatal
//   - Deterministic — same snapshot in, same streams and diagnostics out
//   - Snapshot semantics — the engine never mutates your flowsheet
//   - Quality over failure — non-convergence is a flag, not an error
//
// Everything is organized under single-concern subpackages:
//
//	core/      — Flowsheet, Equipment, Stream, MineralComponent, DetailedStream
//	propagate/ — pre-balance gap-filling passes
//	transfer/  — mixer, flotation, comminution transfer functions
//	closure/   — boundary closure and grade normalization
//	solve/     — the iterative solver and its IterativeResult
//	coherence/ — ERROR/WARNING findings over converged streams
//	balance/   — one-shot circuit analysis and recovery metrics
//	calc/      — Bond energy, mill power, two-product and economic helpers
//	sim/       — one-call simulation runs with per-equipment figures
//	builder/   — deterministic programmatic flowsheet construction
//	fsio/      — YAML/JSON flowsheet documents for tooling
//
// Quick ASCII example:
//
//	feed ──▶ [crusher] ──▶ [mill] ──▶ [rougher] ──▶ concentrate
//	                                      │
//	                                      └──────▶ tailing
//
// Dive into examples/ for full circuits, and cmd/flowbal for the CLI shell.
//
//	go get github.com/minproc/flowbal
package flowbal
