// Package builder assembles flowsheets programmatically and
// deterministically.
//
// One orchestrator, Build, creates an empty flowsheet, resolves the
// functional options into a config, and applies constructors in order:
//
//	fs, err := builder.Build(nil,
//	    builder.Components(fe, gangue),
//	    builder.Unit("cr1", core.KindCrusher, core.CrusherParams{TargetSize: 20}),
//	    builder.Unit("ml1", core.KindMill, core.MillParams{TargetSize: 0.1}),
//	    builder.Feed("feed", "cr1", 1000, 80, 2.7, grades),
//	    builder.Connect("mid", "cr1", "ml1"),
//	    builder.Product("prod", "ml1"),
//	)
//
// Same options and constructor order always produce an identical
// flowsheet. Generated IDs are sequential per kind ("crusher-1",
// "crusher-2") by default; WithUUIDs switches to random UUIDs when
// uniqueness across flowsheets matters more than reproducibility.
//
// Errors
//
//   - ErrNilConstructor: a nil constructor was passed to Build.
//   - ErrDuplicateID: an equipment or stream ID is already taken.
//   - ErrUnknownEndpoint: a stream references a missing equipment ID.
//   - ErrTooFewUnits: a topology constructor got an empty unit list.
//
// Constructors never panic; every failure is a wrapped sentinel checked
// with errors.Is.
package builder
