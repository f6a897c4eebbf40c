// File: detailed.go
// Role: DetailedStream, the per-run derived view of a Stream.
//
// Invariants (after Refresh):
//   - SolidFlow = FlowRate × SolidsPercent/100
//   - WaterFlow = FlowRate − SolidFlow
//   - ComponentMass[c] = SolidFlow × Grades[c]/100
//
// VolumetricFlow combines density-weighted solid and water volumes; a
// stream with no density falls back to DefaultSolidsDensity.

package core

// DetailedStream is a richer view of a Stream for the duration of one
// balance run: absolute solid/water/volumetric flows and per-component
// mass (t/h) alongside the percentage grades kept on the Stream itself.
// Ephemeral: recomputed fully on every simulation invocation.
type DetailedStream struct {
	// Stream is the underlying flow line; grade and flow corrections are
	// written through to it.
	Stream *Stream

	// SolidFlow is the solids mass flow, t/h.
	SolidFlow float64

	// WaterFlow is the water mass flow, t/h.
	WaterFlow float64

	// VolumetricFlow is the pulp volume flow, m³/h.
	VolumetricFlow float64

	// ComponentMass maps component ID → absolute mass flow, t/h.
	ComponentMass map[string]float64
}

// Detail derives a DetailedStream for s, restricted to the given components.
func Detail(s *Stream, components []*MineralComponent) *DetailedStream {
	d := &DetailedStream{
		Stream:        s,
		ComponentMass: make(map[string]float64, len(components)),
	}
	d.Refresh(components)

	return d
}

// DetailAll derives DetailedStreams for a whole stream set, in list order.
func DetailAll(streams []*Stream, components []*MineralComponent) []*DetailedStream {
	out := make([]*DetailedStream, len(streams))
	for i, s := range streams {
		out[i] = Detail(s, components)
	}

	return out
}

// Refresh recomputes every derived quantity from the underlying Stream.
func (d *DetailedStream) Refresh(components []*MineralComponent) {
	s := d.Stream
	d.SolidFlow = s.SolidFlow()
	d.WaterFlow = s.FlowRate - d.SolidFlow

	density := s.Density
	if density <= 0 {
		density = DefaultSolidsDensity
	}
	d.VolumetricFlow = d.SolidFlow/density + d.WaterFlow/WaterDensity

	for id := range d.ComponentMass {
		delete(d.ComponentMass, id)
	}
	for _, c := range components {
		if !c.Active {
			continue
		}
		d.ComponentMass[c.ID] = d.SolidFlow * s.Grades[c.ID] / 100
	}
}

// SetComponentMass assigns an absolute component mass and recomputes the
// stream's percentage grade from the current solid flow. A zero solid flow
// leaves the grade at zero (there is nothing to grade).
func (d *DetailedStream) SetComponentMass(componentID string, mass float64) {
	d.ComponentMass[componentID] = mass
	if d.Stream.Grades == nil {
		d.Stream.Grades = make(map[string]float64)
	}
	if d.SolidFlow > 0 {
		d.Stream.Grades[componentID] = mass / d.SolidFlow * 100
	} else {
		d.Stream.Grades[componentID] = 0
	}
}

// SetFlowRate assigns a corrected bulk flow and recomputes solid, water,
// volumetric flow and component masses from the unchanged solids percent
// and grades.
func (d *DetailedStream) SetFlowRate(flow float64, components []*MineralComponent) {
	d.Stream.FlowRate = flow
	d.Refresh(components)
}
