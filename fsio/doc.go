// Package fsio reads and writes flowsheet documents.
//
// A document is a flat YAML or JSON description of the component library,
// the equipment list, and the streams. It maps one-to-one onto
// core.Flowsheet; equipment parameters appear as an optional per-kind
// block next to the kind name:
//
//	equipment:
//	  - id: cr1
//	    kind: crusher
//	    crusher: {target_size: 20, power: 250}
//	streams:
//	  - id: feed
//	    to: cr1
//	    flow_rate: 1000
//	    solids_percent: 80
//	    density: 2.7
//	    grades: {fe: 35, gangue: 65}
//
// Load picks the codec from the file extension (.json, else YAML). Parse
// and Encode work on readers and writers for both formats.
//
// Errors
//
//   - ErrBadDocument: syntax errors, missing or duplicate IDs, or stream
//     endpoints naming equipment the document does not declare.
//   - ErrUnknownKind: an equipment kind outside the fixed vocabulary.
package fsio
