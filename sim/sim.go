package sim

import (
	"go.uber.org/zap"

	"github.com/minproc/flowbal/calc"
	"github.com/minproc/flowbal/coherence"
	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/solve"
	"github.com/minproc/flowbal/transfer"
)

// Millimetre sizes convert to µm for the Bond formula.
const micronsPerMillimetre = 1000

// Run simulates the flowsheet and returns a report. Iterative
// reconciliation runs when the library has active components; otherwise a
// single transfer sweep computes the streams directly.
func Run(fs *core.Flowsheet, opts ...Option) (*Report, error) {
	if fs == nil {
		return nil, ErrNilFlowsheet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(fs.ActiveComponents()) > 0 {
		return runIterative(fs, o)
	}

	return runSimplified(fs, o)
}

// runIterative delegates to the solver and wraps its result.
func runIterative(fs *core.Flowsheet, o Options) (*Report, error) {
	// The run logger is the solver default; an explicit solve.WithLogger
	// passed through still wins.
	solveOpts := append([]solve.Option{solve.WithLogger(o.Logger)}, o.Solve...)
	res, err := solve.Solve(fs, solveOpts...)
	if err != nil {
		return nil, err
	}

	return &Report{
		Iterative: &res.IterativeResult,
		Streams:   res.Streams,
		Detailed:  res.Detailed,
		Coherence: res.Coherence,
		Equipment: equipmentFigures(fs, res.Streams),
	}, nil
}

// runSimplified computes streams with one transfer sweep in flowsheet
// order. No closure, no normalization, no iteration.
func runSimplified(fs *core.Flowsheet, o Options) (*Report, error) {
	working := core.CloneStreams(fs.Streams)
	index := make(map[string]int, len(working))
	for i, s := range working {
		index[s.ID] = i
	}

	for _, eq := range fs.Equipment {
		ins := core.InputsOf(working, eq.ID)
		outs := core.OutputsOf(working, eq.ID)
		for _, computed := range transfer.Apply(eq, ins, outs) {
			if i, ok := index[computed.ID]; ok {
				working[i].CopyDataFrom(computed)
			}
		}
	}
	o.Logger.Debug("simplified sweep complete", zap.Int("equipment", len(fs.Equipment)))

	return &Report{
		Streams:   working,
		Detailed:  core.DetailAll(working, fs.Components),
		Coherence: coherence.Check(working, fs.Components),
		Equipment: equipmentFigures(fs, working),
	}, nil
}

// equipmentFigures summarizes each unit from the computed streams.
func equipmentFigures(fs *core.Flowsheet, streams []*core.Stream) []EquipmentResult {
	results := make([]EquipmentResult, 0, len(fs.Equipment))
	for _, eq := range fs.Equipment {
		ins := core.InputsOf(streams, eq.ID)
		outs := core.OutputsOf(streams, eq.ID)

		r := EquipmentResult{EquipmentID: eq.ID, Kind: eq.Kind}
		for _, s := range ins {
			r.FeedRate += s.FlowRate
		}
		if len(outs) > 0 {
			r.ProductSize = outs[0].ParticleSize
		}
		r.PowerDraw = powerDraw(eq, ins, outs)

		results = append(results, r)
	}

	return results
}

// powerDraw estimates the unit's power, kW. Mills with a Bond work index
// get the Bond estimate over the actual size reduction; everything else
// reports its rated power, if any.
func powerDraw(eq *core.Equipment, ins, outs []*core.Stream) float64 {
	switch p := eq.Params.(type) {
	case core.MillParams:
		if p.BondWorkIndex > 0 {
			f80 := feedSize(ins)
			p80 := 0.0
			if len(outs) > 0 {
				p80 = outs[0].ParticleSize
			}
			if f80 > 0 && p80 > 0 {
				energy := calc.BondEnergy(p.BondWorkIndex,
					f80*micronsPerMillimetre, p80*micronsPerMillimetre)

				return calc.MillPower(energy, solidRate(ins))
			}
		}

		return p.Power
	case core.CrusherParams:
		return p.Power
	default:
		return 0
	}
}

// feedSize returns the first non-zero input particle size, mm.
func feedSize(ins []*core.Stream) float64 {
	for _, s := range ins {
		if s.ParticleSize > 0 {
			return s.ParticleSize
		}
	}

	return 0
}

// solidRate sums the inputs' solid flows, t/h.
func solidRate(ins []*core.Stream) float64 {
	total := 0.0
	for _, s := range ins {
		total += s.SolidFlow()
	}

	return total
}
