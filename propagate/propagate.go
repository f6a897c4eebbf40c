package propagate

import "github.com/minproc/flowbal/core"

// Propagate fills missing attributes across topologically adjacent streams
// and returns a fully populated clone of the input set plus run statistics.
// It never fails; see the package docs for the heuristics applied.
//
// Complexity: O(MaxPasses · S²) worst case (S = streams; adjacency is
// scanned per stream), trivially fast at flowsheet scale.
func Propagate(streams []*core.Stream, components []*core.MineralComponent, opts ...Option) ([]*core.Stream, Stats) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := core.CloneStreams(streams)

	var stats Stats
	for pass := 1; pass <= o.MaxPasses; pass++ {
		stats.Passes = pass
		changed := onePass(out, components, o)
		stats.Changes += changed
		if changed == 0 {
			break
		}
	}

	return out, stats
}

// onePass applies the four fill rules once over every stream and returns
// the number of attributes filled.
func onePass(streams []*core.Stream, components []*core.MineralComponent, o Options) int {
	changed := 0

	// Rule 1+2: copy across equipment, feed→outputs and product→inputs.
	for _, s := range streams {
		if s.To != "" {
			for _, out := range core.OutputsOf(streams, s.To) {
				changed += fillFrom(out, s, false)
			}
		}
		if s.From != "" {
			for _, in := range core.InputsOf(streams, s.From) {
				changed += fillFrom(in, s, true)
			}
		}
	}

	// Rule 3: default grades for streams still without an assay. A library
	// with no active components yields nothing to fill, so it must not
	// count as a change or the loop would never reach its fixpoint.
	for _, s := range streams {
		if s.HasGrades() {
			continue
		}
		if grades := defaultGrades(components); len(grades) > 0 {
			s.Grades = grades
			changed++
		}
	}

	// Rule 4: estimate flow from siblings, then the constant fallback.
	for _, s := range streams {
		if s.FlowRate > 0 {
			continue
		}
		s.FlowRate = siblingFlow(streams, s)
		if s.FlowRate == 0 {
			s.FlowRate = o.DefaultFlow
		}
		changed++
	}

	return changed
}

// fillFrom copies absent attributes of dst from src. backward marks a
// product→feed copy, which scales particle size by BackwardSizeFactor.
// Attributes dst already carries are never overwritten.
func fillFrom(dst, src *core.Stream, backward bool) int {
	if dst == src {
		return 0
	}
	// Only streams missing flow or assay participate at all.
	if dst.FlowRate > 0 && dst.HasGrades() {
		return 0
	}

	changed := 0
	if dst.FlowRate == 0 && src.FlowRate > 0 {
		dst.FlowRate = src.FlowRate
		changed++
	}
	if dst.SolidsPercent == 0 && src.SolidsPercent > 0 {
		dst.SolidsPercent = src.SolidsPercent
		changed++
	}
	if dst.Density == 0 && src.Density > 0 {
		dst.Density = src.Density
		changed++
	}
	if dst.ParticleSize == 0 && src.ParticleSize > 0 {
		dst.ParticleSize = src.ParticleSize
		if backward {
			dst.ParticleSize = src.ParticleSize * BackwardSizeFactor
		}
		changed++
	}
	if !dst.HasGrades() && src.HasGrades() {
		dst.Grades = make(map[string]float64, len(src.Grades))
		for id, g := range src.Grades {
			dst.Grades[id] = g
		}
		changed++
	}

	return changed
}

// defaultGrades builds an assay of every active component at its default
// grade, renormalized to sum to exactly 100. Components with an all-zero
// default split equally.
func defaultGrades(components []*core.MineralComponent) map[string]float64 {
	grades := make(map[string]float64)
	total := 0.0
	n := 0
	for _, c := range components {
		if !c.Active {
			continue
		}
		grades[c.ID] = c.DefaultGrade
		total += c.DefaultGrade
		n++
	}
	if n == 0 {
		return grades
	}
	if total == 0 {
		for id := range grades {
			grades[id] = 100.0 / float64(n)
		}
		return grades
	}
	for id := range grades {
		grades[id] = grades[id] / total * 100
	}

	return grades
}

// siblingFlow sums the flows of the other inputs feeding the same
// equipment; for a product stream it sums the inputs of its origin.
func siblingFlow(streams []*core.Stream, s *core.Stream) float64 {
	eq := s.To
	if eq == "" {
		eq = s.From
	}
	if eq == "" {
		return 0
	}

	total := 0.0
	for _, in := range core.InputsOf(streams, eq) {
		if in != s {
			total += in.FlowRate
		}
	}

	return total
}
