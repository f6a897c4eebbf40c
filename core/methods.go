// File: methods.go
// Role: Stream predicates, cloning, and Flowsheet topology queries.
// Determinism:
//   - All queries preserve Flowsheet list order; no map iteration leaks out.
// Concurrency:
//   - Flowsheet is a snapshot; callers own synchronization if they share one.

package core

// IsFeed reports whether the stream enters the circuit from outside
// (no upstream equipment).
func (s *Stream) IsFeed() bool { return s.From == "" }

// IsProduct reports whether the stream leaves the circuit
// (no downstream equipment).
func (s *Stream) IsProduct() bool { return s.To == "" }

// HasGrades reports whether the stream carries any component assay.
func (s *Stream) HasGrades() bool { return len(s.Grades) > 0 }

// SolidFlow returns the solids mass flow, t/h.
func (s *Stream) SolidFlow() float64 {
	return s.FlowRate * s.SolidsPercent / 100
}

// WaterFlow returns the water mass flow, t/h.
func (s *Stream) WaterFlow() float64 {
	return s.FlowRate - s.SolidFlow()
}

// ComponentMass returns the absolute mass flow (t/h) of one component.
func (s *Stream) ComponentMass(componentID string) float64 {
	return s.SolidFlow() * s.Grades[componentID] / 100
}

// Clone returns a deep copy of the stream, including its grade map.
func (s *Stream) Clone() *Stream {
	c := *s
	if s.Grades != nil {
		c.Grades = make(map[string]float64, len(s.Grades))
		for id, g := range s.Grades {
			c.Grades[id] = g
		}
	}

	return &c
}

// CloneStreams deep-copies a stream slice. The engine calls this at every
// run entry so the caller's snapshot survives untouched.
func CloneStreams(streams []*Stream) []*Stream {
	out := make([]*Stream, len(streams))
	for i, s := range streams {
		out[i] = s.Clone()
	}

	return out
}

// CopyDataFrom copies flow rate, solids percent, density, particle size and
// grades from src into s, leaving identity and connectivity untouched.
// Grade maps are copied by value; no aliasing with src.
func (s *Stream) CopyDataFrom(src *Stream) {
	s.FlowRate = src.FlowRate
	s.SolidsPercent = src.SolidsPercent
	s.Density = src.Density
	s.ParticleSize = src.ParticleSize
	if src.Grades == nil {
		s.Grades = nil
		return
	}
	s.Grades = make(map[string]float64, len(src.Grades))
	for id, g := range src.Grades {
		s.Grades[id] = g
	}
}

// ActiveComponents returns the active subset of the component library,
// in list order.
func (fs *Flowsheet) ActiveComponents() []*MineralComponent {
	out := make([]*MineralComponent, 0, len(fs.Components))
	for _, c := range fs.Components {
		if c.Active {
			out = append(out, c)
		}
	}

	return out
}

// EquipmentByID returns the equipment with the given ID, or nil.
func (fs *Flowsheet) EquipmentByID(id string) *Equipment {
	for _, e := range fs.Equipment {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// StreamByID returns the stream with the given ID, or ErrStreamNotFound.
func (fs *Flowsheet) StreamByID(id string) (*Stream, error) {
	for _, s := range fs.Streams {
		if s.ID == id {
			return s, nil
		}
	}

	return nil, ErrStreamNotFound
}

// InputsOf returns every stream feeding the given equipment, in list order.
func InputsOf(streams []*Stream, equipmentID string) []*Stream {
	var out []*Stream
	for _, s := range streams {
		if s.To == equipmentID {
			out = append(out, s)
		}
	}

	return out
}

// OutputsOf returns every stream leaving the given equipment, in list order.
func OutputsOf(streams []*Stream, equipmentID string) []*Stream {
	var out []*Stream
	for _, s := range streams {
		if s.From == equipmentID {
			out = append(out, s)
		}
	}

	return out
}

// FeedStreams returns the circuit's boundary inputs (From empty).
func FeedStreams(streams []*Stream) []*Stream {
	var out []*Stream
	for _, s := range streams {
		if s.IsFeed() {
			out = append(out, s)
		}
	}

	return out
}

// ProductStreams returns the circuit's boundary outputs (To empty).
func ProductStreams(streams []*Stream) []*Stream {
	var out []*Stream
	for _, s := range streams {
		if s.IsProduct() {
			out = append(out, s)
		}
	}

	return out
}

// Clone returns a Flowsheet sharing equipment and component records (which
// the engine never mutates) but deep-copying every stream.
func (fs *Flowsheet) Clone() *Flowsheet {
	return &Flowsheet{
		Equipment:  fs.Equipment,
		Streams:    CloneStreams(fs.Streams),
		Components: fs.Components,
	}
}
