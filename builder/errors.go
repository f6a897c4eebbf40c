package builder

import "errors"

// ErrNilConstructor indicates a nil Constructor was passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")

// ErrDuplicateID indicates an equipment or stream ID is already present
// in the flowsheet under construction.
var ErrDuplicateID = errors.New("builder: duplicate id")

// ErrUnknownEndpoint indicates a stream names an equipment ID that has
// not been added. Boundary endpoints are the empty string, never a guess.
var ErrUnknownEndpoint = errors.New("builder: unknown equipment endpoint")

// ErrTooFewUnits indicates a topology constructor received no kinds.
var ErrTooFewUnits = errors.New("builder: too few units")
