// Package balance provides one-shot circuit diagnostics over a flowsheet:
// boundary mass-balance validation and metallurgical accounting.
//
// Unlike the iterative solver, nothing here corrects anything. Each
// function reads the streams as they stand and reports how well they
// close. Run it on raw plant data to judge measurement quality, or on a
// reconciled result to confirm the solver's work.
//
//	gb, _ := balance.ValidateGlobalMassBalance(fs)
//	if !gb.Balanced {
//	    fmt.Printf("circuit off by %.2f t/h (%.3f%%)\n", gb.Absolute, gb.Relative)
//	}
//
// Errors
//
//   - ErrNilFlowsheet: a nil flowsheet was passed.
//   - ErrUnknownComponent: the requested component is not in the library.
package balance
