package transfer

import "github.com/minproc/flowbal/core"

// combined is the flow-weighted merge of an equipment's input streams.
type combined struct {
	flow      float64            // total pulp flow, t/h
	solid     float64            // total solids flow, t/h
	solidsPct float64            // flow-weighted solids percent
	density   float64            // solids-weighted density
	size      float64            // flow-weighted particle size
	mass      map[string]float64 // component ID → absolute mass, t/h
}

// Apply runs the transfer function of eq over its inputs and returns value
// copies of the given outputs carrying the computed data. Identity and
// connectivity of each output are preserved; nothing aliases the inputs.
//
// Zero inputs or zero outputs return an empty result: the node is skipped
// for this iteration. Apply never fails.
func Apply(eq *core.Equipment, inputs, outputs []*core.Stream, opts ...Option) []*core.Stream {
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	feed := mergeInputs(inputs)

	switch {
	case eq.Kind == core.KindMixer:
		return applyMixer(eq, feed, outputs)
	case eq.Kind.IsFlotation():
		return applyFlotation(eq, feed, outputs, o)
	case eq.Kind.IsComminution():
		return applyComminution(eq, feed, outputs, o)
	default:
		return applyPassthrough(feed, outputs)
	}
}

// mergeInputs sums flows and component masses over the input streams.
func mergeInputs(inputs []*core.Stream) combined {
	c := combined{mass: make(map[string]float64)}
	for _, in := range inputs {
		c.flow += in.FlowRate
		solid := in.SolidFlow()
		c.solid += solid
		c.density += in.Density * solid
		c.size += in.ParticleSize * in.FlowRate
		for id, g := range in.Grades {
			c.mass[id] += solid * g / 100
		}
	}
	if c.flow > 0 {
		c.solidsPct = c.solid / c.flow * 100
		c.size /= c.flow
	}
	if c.solid > 0 {
		c.density /= c.solid
	}

	return c
}

// grade returns the combined grade (%) of one component.
func (c combined) grade(id string) float64 {
	if c.solid <= 0 {
		return 0
	}

	return c.mass[id] / c.solid * 100
}

// outShell returns a connectivity-preserving empty copy of an output port.
func outShell(o *core.Stream) *core.Stream {
	return &core.Stream{
		ID:     o.ID,
		From:   o.From,
		To:     o.To,
		Grades: make(map[string]float64),
	}
}

// applyMixer splits the combined feed across the output ports. With the
// same grade on every port, per-component mass closure holds by
// construction: Σ outputs = feed, component-wise and in bulk.
func applyMixer(eq *core.Equipment, feed combined, outputs []*core.Stream) []*core.Stream {
	fractions := splitFractions(eq, len(outputs))

	out := make([]*core.Stream, len(outputs))
	for i, port := range outputs {
		s := outShell(port)
		s.FlowRate = feed.flow * fractions[i]
		s.SolidsPercent = feed.solidsPct
		s.Density = feed.density
		s.ParticleSize = feed.size
		for id := range feed.mass {
			s.Grades[id] = feed.grade(id)
		}
		out[i] = s
	}

	return out
}

// splitFractions resolves the mixer split: configured fractions when they
// match the port count and sum positive (renormalized to 1), equal split
// otherwise.
func splitFractions(eq *core.Equipment, ports int) []float64 {
	fractions := make([]float64, ports)

	if mp, ok := eq.Params.(core.MixerParams); ok && len(mp.SplitFractions) == ports {
		total := 0.0
		for _, f := range mp.SplitFractions {
			total += f
		}
		if total > 0 {
			for i, f := range mp.SplitFractions {
				fractions[i] = f / total
			}
			return fractions
		}
	}

	for i := range fractions {
		fractions[i] = 1 / float64(ports)
	}

	return fractions
}

// applyFlotation splits the feed into concentrate (first port) and tailing
// (second port). Tailing mass is feed minus concentrate, so component
// closure holds by construction. A single-port cell degrades to
// pass-through.
func applyFlotation(eq *core.Equipment, feed combined, outputs []*core.Stream, o Options) []*core.Stream {
	if len(outputs) < 2 {
		return applyPassthrough(feed, outputs)
	}

	fp, _ := eq.Params.(core.FlotationParams)
	massPull := fp.MassPull
	if massPull <= 0 || massPull >= 1 {
		massPull = o.MassPull
	}
	concSolids := fp.ConcentrateSolids
	if concSolids <= 0 {
		concSolids = o.ConcentrateSolids
	}
	tailSolids := fp.TailingSolids
	if tailSolids <= 0 {
		tailSolids = o.TailingSolids
	}

	conc := outShell(outputs[0])
	conc.FlowRate = feed.flow * massPull
	conc.SolidsPercent = concSolids
	conc.Density = feed.density
	conc.ParticleSize = feed.size

	tail := outShell(outputs[1])
	tail.FlowRate = feed.flow - conc.FlowRate
	tail.SolidsPercent = tailSolids
	tail.Density = feed.density
	tail.ParticleSize = feed.size

	concSolid := conc.SolidFlow()
	tailSolid := tail.SolidFlow()
	for id, m := range feed.mass {
		r := recoveryFor(fp, id, o)
		concMass := m * r / 100
		tailMass := m - concMass
		if concSolid > 0 {
			conc.Grades[id] = concMass / concSolid * 100
		}
		if tailSolid > 0 {
			tail.Grades[id] = tailMass / tailSolid * 100
		}
	}

	out := []*core.Stream{conc, tail}
	// Ports beyond the two product classes keep their current data.
	for _, extra := range outputs[2:] {
		out = append(out, extra.Clone())
	}

	return out
}

// recoveryFor resolves a component's recovery (%): per-component override,
// then the equipment scalar, then the engine default.
func recoveryFor(fp core.FlotationParams, componentID string, o Options) float64 {
	if r, ok := fp.ComponentRecovery[componentID]; ok {
		return r
	}
	if fp.Recovery > 0 {
		return fp.Recovery
	}

	return o.Recovery
}

// applyComminution passes flow and composition through unchanged, reducing
// particle size to the target or by the reduction factor.
func applyComminution(eq *core.Equipment, feed combined, outputs []*core.Stream, o Options) []*core.Stream {
	target := 0.0
	switch p := eq.Params.(type) {
	case core.CrusherParams:
		target = p.TargetSize
	case core.MillParams:
		target = p.TargetSize
	}
	size := feed.size / o.SizeReductionFactor
	if target > 0 {
		size = target
	}

	out := applyPassthrough(feed, outputs)
	for _, s := range out {
		s.ParticleSize = size
	}

	return out
}

// applyPassthrough copies the combined feed to every output port by value.
func applyPassthrough(feed combined, outputs []*core.Stream) []*core.Stream {
	out := make([]*core.Stream, len(outputs))
	for i, port := range outputs {
		s := outShell(port)
		s.FlowRate = feed.flow
		s.SolidsPercent = feed.solidsPct
		s.Density = feed.density
		s.ParticleSize = feed.size
		for id := range feed.mass {
			s.Grades[id] = feed.grade(id)
		}
		out[i] = s
	}

	return out
}
