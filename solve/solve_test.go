package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/minproc/flowbal/coherence"
	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/solve"
)

func library() []*core.MineralComponent {
	return []*core.MineralComponent{
		{ID: "fe", Symbol: "Fe2O3", Density: 5.2, DefaultGrade: 30, Active: true},
		{ID: "gangue", Symbol: "SiO2", Density: 2.65, DefaultGrade: 70, Active: true},
	}
}

// streamByID fails the test when the stream is absent.
func streamByID(t *testing.T, streams []*core.Stream, id string) *core.Stream {
	t.Helper()
	for _, s := range streams {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("stream %q not found", id)

	return nil
}

// TestSolve_NilFlowsheet returns the sentinel.
func TestSolve_NilFlowsheet(t *testing.T) {
	_, err := solve.Solve(nil)
	assert.ErrorIs(t, err, solve.ErrNilFlowsheet)
}

// TestSolve_MissingProductData is the missing-product scenario: one feed
// with data, one product with none. Propagation fills the product from the
// feed; the run converges with zero per-component error.
func TestSolve_MissingProductData(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "cr1", Kind: core.KindCrusher}},
		Streams: []*core.Stream{
			{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "prod", From: "cr1"}, // flow 0, no grades
		},
		Components: library(),
	}

	res, err := solve.Solve(fs)
	require.NoError(t, err)

	prop := streamByID(t, res.Propagated, "prod")
	assert.Equal(t, 1000.0, prop.FlowRate, "propagation copies the feed flow")
	assert.Equal(t, 35.0, prop.Grades["fe"], "propagation copies the feed assay")

	assert.True(t, res.Converged, "a pass-through circuit must converge")
	assert.Equal(t, solve.StateConverged, res.State)
	assert.InDelta(t, 0.0, res.ComponentErrors["fe"], 1e-9, "per-component error is zero")
	assert.InDelta(t, 0.0, res.GlobalError, 1e-9)
}

// TestSolve_ClosureInvariants: after convergence, boundary totals agree
// within tolerance for every active component and for bulk flow, and every
// populated stream's grades sum to 100 ± 0.1.
func TestSolve_ClosureInvariants(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{
			{ID: "cr1", Kind: core.KindCrusher, Params: core.CrusherParams{TargetSize: 20}},
			{ID: "ml1", Kind: core.KindMill, Params: core.MillParams{TargetSize: 0.1}},
		},
		Streams: []*core.Stream{
			{ID: "feed", To: "cr1", FlowRate: 1200, SolidsPercent: 80, Density: 2.7,
				ParticleSize: 150, Grades: map[string]float64{"fe": 42, "gangue": 58}},
			{ID: "mid", From: "cr1", To: "ml1"},
			{ID: "prod", From: "ml1"},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs)
	require.NoError(t, err)
	require.True(t, res.Converged)

	for id, e := range res.ComponentErrors {
		assert.Less(t, e, solve.DefaultTolerance, "component %s boundary error", id)
	}
	assert.Less(t, res.GlobalError, solve.DefaultTolerance, "bulk boundary error")

	for _, s := range res.Streams {
		if s.SolidFlow() == 0 {
			continue
		}
		total := s.Grades["fe"] + s.Grades["gangue"]
		assert.InDelta(t, 100.0, total, 0.1, "stream %s grade total", s.ID)
	}
}

// TestSolve_MixerCircuit: 100 + 200 t/h into a mixer; the product carries
// exactly 300 t/h and the mass-weighted grade.
func TestSolve_MixerCircuit(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "mx1", Kind: core.KindMixer}},
		Streams: []*core.Stream{
			{ID: "f1", To: "mx1", FlowRate: 100, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 30, "gangue": 70}},
			{ID: "f2", To: "mx1", FlowRate: 200, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 45, "gangue": 55}},
			{ID: "p", From: "mx1"},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs)
	require.NoError(t, err)
	require.True(t, res.Converged)

	p := streamByID(t, res.Streams, "p")
	assert.InDelta(t, 300.0, p.FlowRate, 1e-9, "mixer output is exactly the sum of feeds")
	assert.InDelta(t, 40.0, p.Grades["fe"], 1e-9, "mass-weighted fe grade (24+72)/240")
}

// TestSolve_ConflictingTotals: feed says 1000 t/h, the populated product
// says 500. The input wins and the product is corrected to 1000.
func TestSolve_ConflictingTotals(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "cr1", Kind: core.KindCrusher}},
		Streams: []*core.Stream{
			{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "prod", From: "cr1", FlowRate: 500, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs)
	require.NoError(t, err)
	require.True(t, res.Converged)

	prod := streamByID(t, res.Streams, "prod")
	assert.InDelta(t, 1000.0, prod.FlowRate, 1e-9, "input is ground truth; output overwritten")
}

// TestSolve_FlotationExhaustedIsDiagnostic: the flotation bulk heuristics
// (30% pull, 65/35 solids) are deliberately inconsistent with grade
// normalization, so a bare rougher circuit cannot reach 0.001%. The solver
// must report exhausted rather than return an error.
func TestSolve_FlotationExhaustedIsDiagnostic(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{
			{ID: "ro1", Kind: core.KindRougher, Params: core.FlotationParams{Recovery: 85}},
		},
		Streams: []*core.Stream{
			{ID: "feed", To: "ro1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "conc", From: "ro1"},
			{ID: "tail", From: "ro1"},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs, solve.WithMaxIterations(5))
	require.NoError(t, err, "non-convergence is reported, not raised")

	assert.False(t, res.Converged)
	assert.Equal(t, solve.StateExhausted, res.State)
	assert.Equal(t, 5, res.Iterations, "cap honored")
	assert.Positive(t, res.MaxError, "residual error is reported")
	assert.NotEmpty(t, res.Streams, "streams are returned regardless")
}

// TestSolve_GhostEquipment: the equipment list references ids absent from
// the streams, so no transfer function ever runs. Solve still returns a
// result object.
func TestSolve_GhostEquipment(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "ghost", Kind: core.KindMill}},
		Streams: []*core.Stream{
			{ID: "feed", To: "x1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "prod", From: "x1"},
		},
		Components: library(),
	}

	var res *solve.Result
	var err error
	assert.NotPanics(t, func() { res, err = solve.Solve(fs) })
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.Iterations, 1)
}

// TestSolve_InputUntouched: snapshot semantics across the whole run.
func TestSolve_InputUntouched(t *testing.T) {
	feed := &core.Stream{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80,
		Density: 2.7, Grades: map[string]float64{"fe": 35, "gangue": 65}}
	prod := &core.Stream{ID: "prod", From: "cr1"}
	fs := &core.Flowsheet{
		Equipment:  []*core.Equipment{{ID: "cr1", Kind: core.KindCrusher}},
		Streams:    []*core.Stream{feed, prod},
		Components: library(),
	}

	_, err := solve.Solve(fs)
	require.NoError(t, err)

	assert.Zero(t, prod.FlowRate, "caller's product stream stays empty")
	assert.Nil(t, prod.Grades)
	assert.Equal(t, 35.0, feed.Grades["fe"])
}

// TestSolve_TopologicalOrder: a shuffled equipment list converges to the
// same product under the upstream-first sweep.
func TestSolve_TopologicalOrder(t *testing.T) {
	build := func() *core.Flowsheet {
		return &core.Flowsheet{
			Equipment: []*core.Equipment{
				// deliberately listed downstream-first
				{ID: "ml1", Kind: core.KindMill},
				{ID: "cr1", Kind: core.KindCrusher},
			},
			Streams: []*core.Stream{
				{ID: "feed", To: "cr1", FlowRate: 800, SolidsPercent: 75, Density: 2.7,
					ParticleSize: 100, Grades: map[string]float64{"fe": 40, "gangue": 60}},
				{ID: "mid", From: "cr1", To: "ml1"},
				{ID: "prod", From: "ml1"},
			},
			Components: library(),
		}
	}

	listRes, err := solve.Solve(build())
	require.NoError(t, err)
	topoRes, err := solve.Solve(build(), solve.WithTopologicalOrder())
	require.NoError(t, err)

	require.True(t, topoRes.Converged)
	assert.Equal(t,
		streamByID(t, listRes.Streams, "prod").FlowRate,
		streamByID(t, topoRes.Streams, "prod").FlowRate,
		"both sweeps settle on the same product flow")
}

// TestSolve_CoherenceReportAttached: a converged clean run carries the
// success marker; density-less streams are flagged.
func TestSolve_CoherenceReportAttached(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "cr1", Kind: core.KindCrusher}},
		Streams: []*core.Stream{
			{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "prod", From: "cr1"},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs)
	require.NoError(t, err)

	require.NotEmpty(t, res.Coherence)
	assert.Equal(t, coherence.OKMarker, res.Coherence[0],
		"density propagates from the feed, so the run is clean")
}

// TestSolve_WithLogger: a real logger must not change results.
func TestSolve_WithLogger(t *testing.T) {
	fs := &core.Flowsheet{
		Equipment: []*core.Equipment{{ID: "cr1", Kind: core.KindCrusher}},
		Streams: []*core.Stream{
			{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80, Density: 2.7,
				Grades: map[string]float64{"fe": 35, "gangue": 65}},
			{ID: "prod", From: "cr1"},
		},
		Components: library(),
	}

	res, err := solve.Solve(fs, solve.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	assert.True(t, res.Converged)
}
