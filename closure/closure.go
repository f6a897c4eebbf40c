package closure

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/minproc/flowbal/core"
)

// ComponentTotals sums one component's absolute mass (t/h) over the
// feed-class and product-class boundary streams.
func ComponentTotals(streams []*core.DetailedStream, componentID string) (in, out float64) {
	var ins, outs []float64
	for _, d := range streams {
		switch {
		case d.Stream.IsFeed():
			ins = append(ins, d.ComponentMass[componentID])
		case d.Stream.IsProduct():
			outs = append(outs, d.ComponentMass[componentID])
		}
	}

	return floats.Sum(ins), floats.Sum(outs)
}

// BulkTotals sums bulk flow (t/h) over the boundary streams.
func BulkTotals(streams []*core.DetailedStream) (in, out float64) {
	var ins, outs []float64
	for _, d := range streams {
		switch {
		case d.Stream.IsFeed():
			ins = append(ins, d.Stream.FlowRate)
		case d.Stream.IsProduct():
			outs = append(outs, d.Stream.FlowRate)
		}
	}

	return floats.Sum(ins), floats.Sum(outs)
}

// triggered reports whether the authoritative total demands an overwrite of
// the other side: the other side is empty, or off by more than threshold.
func triggered(authoritative, other, threshold float64) bool {
	if authoritative <= 0 {
		return false
	}
	if other == 0 {
		return true
	}

	return math.Abs(other/authoritative-1) > threshold
}

// Component reconciles one component across the circuit boundary.
// Returns true when a correction was applied.
func Component(streams []*core.DetailedStream, componentID string, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in, out := ComponentTotals(streams, componentID)
	switch {
	case triggered(in, out, o.Threshold):
		return distributeMass(streams, componentID, in, false)
	case in == 0 && out > 0:
		return distributeMass(streams, componentID, out, true)
	default:
		return false
	}
}

// distributeMass splits total equally across the populated streams of the
// corrected side (products normally; feeds when reverse), recomputing each
// stream's grade from its current solid flow.
func distributeMass(streams []*core.DetailedStream, componentID string, total float64, reverse bool) bool {
	targets := correctionTargets(streams, reverse)
	if len(targets) == 0 {
		return false
	}

	share := total / float64(len(targets))
	for _, d := range targets {
		d.SetComponentMass(componentID, share)
	}

	return true
}

// Bulk reconciles total flow across the boundary, recomputing solid, water
// and volumetric flows of every corrected stream from its unchanged solids
// percent. Returns true when a correction was applied.
func Bulk(streams []*core.DetailedStream, components []*core.MineralComponent, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	in, out := BulkTotals(streams)
	var (
		total   float64
		reverse bool
	)
	switch {
	case triggered(in, out, o.Threshold):
		total, reverse = in, false
	case in == 0 && out > 0:
		total, reverse = out, true
	default:
		return false
	}

	targets := correctionTargets(streams, reverse)
	if len(targets) == 0 {
		return false
	}

	share := total / float64(len(targets))
	for _, d := range targets {
		d.SetFlowRate(share, components)
	}

	return true
}

// correctionTargets returns the populated streams of the side being
// overwritten: products when the input is authoritative, feeds otherwise.
func correctionTargets(streams []*core.DetailedStream, reverse bool) []*core.DetailedStream {
	var out []*core.DetailedStream
	for _, d := range streams {
		if d.Stream.FlowRate <= 0 {
			continue
		}
		if (!reverse && d.Stream.IsProduct()) || (reverse && d.Stream.IsFeed()) {
			out = append(out, d)
		}
	}

	return out
}

// Close runs the full reconciliation: every active component, then bulk
// flow. Returns the number of corrections applied.
func Close(streams []*core.DetailedStream, components []*core.MineralComponent, opts ...Option) int {
	corrections := 0
	for _, c := range components {
		if !c.Active {
			continue
		}
		if Component(streams, c.ID, opts...) {
			corrections++
		}
	}
	if Bulk(streams, components, opts...) {
		corrections++
	}

	return corrections
}

// Normalize rescales one stream's active-component grades to sum to exactly
// 100, recomputing absolute masses from the rescaled grades and the stored
// solid flow. A zero total is accepted as-is. Returns true when rescaled.
func Normalize(d *core.DetailedStream, components []*core.MineralComponent, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := 0.0
	for _, c := range components {
		if c.Active {
			total += d.Stream.Grades[c.ID]
		}
	}
	if total == 0 || math.Abs(total-100) <= o.NormTolerance {
		return false
	}

	scale := 100 / total
	for _, c := range components {
		if !c.Active {
			continue
		}
		if g, ok := d.Stream.Grades[c.ID]; ok {
			d.Stream.Grades[c.ID] = g * scale
		}
	}
	d.Refresh(components)

	return true
}

// NormalizeAll normalizes every stream and returns how many were rescaled.
func NormalizeAll(streams []*core.DetailedStream, components []*core.MineralComponent, opts ...Option) int {
	n := 0
	for _, d := range streams {
		if Normalize(d, components, opts...) {
			n++
		}
	}

	return n
}
