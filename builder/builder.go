package builder

import (
	"fmt"

	"github.com/minproc/flowbal/core"
)

// Constructor applies one deterministic mutation to the flowsheet under
// construction. Constructors validate early and return wrapped sentinels;
// they never panic.
type Constructor func(fs *core.Flowsheet, cfg config) error

// Build creates an empty flowsheet, resolves opts, and applies all
// constructors in order. The first error aborts the build; no partial
// cleanup is attempted.
func Build(opts []Option, cons ...Constructor) (*core.Flowsheet, error) {
	fs := &core.Flowsheet{}
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(fs, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return fs, nil
}

// Components registers mineral components. Duplicate IDs are rejected.
func Components(comps ...*core.MineralComponent) Constructor {
	return func(fs *core.Flowsheet, _ config) error {
		for _, c := range comps {
			if hasComponent(fs, c.ID) {
				return fmt.Errorf("Components(%s): %w", c.ID, ErrDuplicateID)
			}
			fs.Components = append(fs.Components, c)
		}

		return nil
	}
}

// Unit adds one piece of equipment. An empty id is generated from the
// kind via the configured ID scheme.
func Unit(id string, kind core.EquipmentKind, params core.EquipmentParams) Constructor {
	return func(fs *core.Flowsheet, cfg config) error {
		if id == "" {
			id = cfg.nextID(kind.String())
		}
		if fs.EquipmentByID(id) != nil {
			return fmt.Errorf("Unit(%s): %w", id, ErrDuplicateID)
		}
		fs.Equipment = append(fs.Equipment, &core.Equipment{ID: id, Kind: kind, Params: params})

		return nil
	}
}

// Connect adds an internal stream between two existing units. An empty
// id is generated.
func Connect(id, from, to string) Constructor {
	return func(fs *core.Flowsheet, cfg config) error {
		return addStream(fs, cfg, &core.Stream{ID: id, From: from, To: to})
	}
}

// Feed adds a circuit feed stream into an existing unit, with its
// measured data.
func Feed(id, to string, flow, solidsPercent, density float64, grades map[string]float64) Constructor {
	return func(fs *core.Flowsheet, cfg config) error {
		return addStream(fs, cfg, &core.Stream{
			ID:            id,
			To:            to,
			FlowRate:      flow,
			SolidsPercent: solidsPercent,
			Density:       density,
			Grades:        cloneGrades(grades),
		})
	}
}

// Product adds an empty circuit product stream out of an existing unit.
// The solver fills its data.
func Product(id, from string) Constructor {
	return func(fs *core.Flowsheet, cfg config) error {
		return addStream(fs, cfg, &core.Stream{ID: id, From: from})
	}
}

// Chain adds a serial line of units with generated IDs, connected by
// generated streams. The line's boundary streams are the caller's job
// (Feed into the first generated unit, Product off the last).
func Chain(kinds ...core.EquipmentKind) Constructor {
	return func(fs *core.Flowsheet, cfg config) error {
		if len(kinds) == 0 {
			return fmt.Errorf("Chain: %w", ErrTooFewUnits)
		}

		prev := ""
		for _, k := range kinds {
			id := cfg.nextID(k.String())
			if fs.EquipmentByID(id) != nil {
				return fmt.Errorf("Chain(%s): %w", id, ErrDuplicateID)
			}
			fs.Equipment = append(fs.Equipment, &core.Equipment{ID: id, Kind: k})

			if prev != "" {
				if err := addStream(fs, cfg, &core.Stream{From: prev, To: id}); err != nil {
					return fmt.Errorf("Chain: %w", err)
				}
			}
			prev = id
		}

		return nil
	}
}

// addStream validates endpoints and the ID, generating the latter when
// empty. The empty endpoint string is the circuit boundary.
func addStream(fs *core.Flowsheet, cfg config, s *core.Stream) error {
	if s.From != "" && fs.EquipmentByID(s.From) == nil {
		return fmt.Errorf("stream from %q: %w", s.From, ErrUnknownEndpoint)
	}
	if s.To != "" && fs.EquipmentByID(s.To) == nil {
		return fmt.Errorf("stream to %q: %w", s.To, ErrUnknownEndpoint)
	}

	if s.ID == "" {
		s.ID = cfg.nextID("stream")
	}
	if _, err := fs.StreamByID(s.ID); err == nil {
		return fmt.Errorf("stream %q: %w", s.ID, ErrDuplicateID)
	}
	fs.Streams = append(fs.Streams, s)

	return nil
}

// cloneGrades copies the caller's map so later edits cannot reach into
// the flowsheet.
func cloneGrades(grades map[string]float64) map[string]float64 {
	if grades == nil {
		return nil
	}
	out := make(map[string]float64, len(grades))
	for k, v := range grades {
		out[k] = v
	}

	return out
}

// hasComponent reports whether the ID is already registered.
func hasComponent(fs *core.Flowsheet, id string) bool {
	for _, c := range fs.Components {
		if c.ID == id {
			return true
		}
	}

	return false
}
