package balance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/minproc/flowbal/closure"
	"github.com/minproc/flowbal/core"
)

// ValidateGlobalMassBalance checks bulk solid flow across the circuit
// boundary.
func ValidateGlobalMassBalance(fs *core.Flowsheet, opts ...Option) (FlowBalance, error) {
	if fs == nil {
		return FlowBalance{}, ErrNilFlowsheet
	}
	o := resolve(opts)

	detailed := core.DetailAll(fs.Streams, fs.Components)
	in, out := solidTotals(detailed)

	return newFlowBalance(in, out, o.Tolerance), nil
}

// solidTotals sums solid flow over the feed-class and product-class
// boundary streams. Water is excluded deliberately: dewatering shifts
// pulp tonnage without opening the solids balance.
func solidTotals(streams []*core.DetailedStream) (in, out float64) {
	var ins, outs []float64
	for _, d := range streams {
		switch {
		case d.Stream.IsFeed():
			ins = append(ins, d.SolidFlow)
		case d.Stream.IsProduct():
			outs = append(outs, d.SolidFlow)
		}
	}

	return floats.Sum(ins), floats.Sum(outs)
}

// ValidateComponentBalance checks one component's mass across the circuit
// boundary.
func ValidateComponentBalance(fs *core.Flowsheet, componentID string, opts ...Option) (ComponentBalance, error) {
	if fs == nil {
		return ComponentBalance{}, ErrNilFlowsheet
	}
	if !hasComponent(fs, componentID) {
		return ComponentBalance{}, fmt.Errorf("%w: %s", ErrUnknownComponent, componentID)
	}
	o := resolve(opts)

	detailed := core.DetailAll(fs.Streams, fs.Components)
	in, out := closure.ComponentTotals(detailed, componentID)

	return ComponentBalance{
		ComponentID: componentID,
		FlowBalance: newFlowBalance(in, out, o.Tolerance),
	}, nil
}

// MetallurgicalRecovery reports, for one component, the share of the feed
// mass reporting to each product stream and the enrichment ratio relative
// to the combined feed grade.
func MetallurgicalRecovery(fs *core.Flowsheet, componentID string) (RecoveryReport, error) {
	if fs == nil {
		return RecoveryReport{}, ErrNilFlowsheet
	}
	if !hasComponent(fs, componentID) {
		return RecoveryReport{}, fmt.Errorf("%w: %s", ErrUnknownComponent, componentID)
	}

	feeds := core.FeedStreams(fs.Streams)
	feedMasses := make([]float64, len(feeds))
	feedSolids := make([]float64, len(feeds))
	for i, s := range feeds {
		feedMasses[i] = s.ComponentMass(componentID)
		feedSolids[i] = s.SolidFlow()
	}
	feedMass := floats.Sum(feedMasses)
	feedSolid := floats.Sum(feedSolids)

	report := RecoveryReport{ComponentID: componentID, FeedMass: feedMass}
	if feedSolid > 0 {
		report.FeedGrade = feedMass / feedSolid * 100
	}

	for _, s := range core.ProductStreams(fs.Streams) {
		sr := StreamRecovery{StreamID: s.ID, Mass: s.ComponentMass(componentID)}
		if feedMass > 0 {
			sr.Recovery = sr.Mass / feedMass * 100
		}
		if report.FeedGrade > 0 {
			sr.Enrichment = s.Grades[componentID] / report.FeedGrade
		}
		report.Streams = append(report.Streams, sr)
	}

	return report, nil
}

// AnalyzeCircuitBalance runs the global check, every active component's
// check, and metallurgical accounting in one pass.
func AnalyzeCircuitBalance(fs *core.Flowsheet, opts ...Option) (*Result, error) {
	if fs == nil {
		return nil, ErrNilFlowsheet
	}

	global, err := ValidateGlobalMassBalance(fs, opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{Global: global}
	for _, c := range fs.ActiveComponents() {
		cb, err := ValidateComponentBalance(fs, c.ID, opts...)
		if err != nil {
			return nil, err
		}
		res.Components = append(res.Components, cb)

		rr, err := MetallurgicalRecovery(fs, c.ID)
		if err != nil {
			return nil, err
		}
		res.Recoveries = append(res.Recoveries, rr)
	}

	return res, nil
}

// resolve applies options over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// newFlowBalance derives the error figures from boundary totals.
func newFlowBalance(in, out, tolerance float64) FlowBalance {
	fb := FlowBalance{In: in, Out: out, Absolute: math.Abs(in - out)}
	switch {
	case in > 0:
		fb.Relative = fb.Absolute / in * 100
	case out > 0:
		fb.Relative = 100
	}
	fb.Balanced = fb.Relative < tolerance

	return fb
}

// hasComponent reports whether the ID is in the flowsheet's library.
func hasComponent(fs *core.Flowsheet, id string) bool {
	for _, c := range fs.Components {
		if c.ID == id {
			return true
		}
	}

	return false
}
