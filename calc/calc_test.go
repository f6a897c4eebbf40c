package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minproc/flowbal/calc"
)

func TestBondEnergy(t *testing.T) {
	// Wi 12 kWh/t, feed 10 mm to product 100 µm.
	w := calc.BondEnergy(12, 10000, 100)
	assert.InDelta(t, 10.8, w, 1e-9, "10·12·(1/10 − 1/100)")
}

func TestBondEnergy_DegenerateInputs(t *testing.T) {
	assert.Zero(t, calc.BondEnergy(0, 10000, 100), "no work index")
	assert.Zero(t, calc.BondEnergy(12, 0, 100), "no feed size")
	assert.Zero(t, calc.BondEnergy(12, 10000, 0), "no product size")
}

func TestBondEnergy_CoarserProductIsNegative(t *testing.T) {
	// p80 > f80 gives negative energy; the caller decides what that means.
	assert.Negative(t, calc.BondEnergy(12, 100, 10000))
}

func TestMillPower(t *testing.T) {
	assert.InDelta(t, 1080.0, calc.MillPower(10.8, 100), 1e-9, "kWh/t × t/h = kW")
	assert.Zero(t, calc.MillPower(10.8, 0))
	assert.Zero(t, calc.MillPower(0, 100))
}

func TestTwoProductRecovery(t *testing.T) {
	// Copper-style assays: feed 2%, concentrate 40%, tailing 0.2%.
	r := calc.TwoProductRecovery(2.0, 40.0, 0.2)
	assert.InDelta(t, 90.4522613065, r, 1e-9)
}

func TestTwoProductRecovery_Degenerate(t *testing.T) {
	assert.Zero(t, calc.TwoProductRecovery(0, 40, 0.2), "no feed grade")
	assert.Zero(t, calc.TwoProductRecovery(2, 5, 5), "no separation")
}

func TestRatioOfConcentration(t *testing.T) {
	k := calc.RatioOfConcentration(2.0, 40.0, 0.2)
	assert.InDelta(t, 39.8/1.8, k, 1e-9, "about 22 tonnes of feed per tonne of concentrate")
	assert.Zero(t, calc.RatioOfConcentration(2, 40, 2), "feed equals tailing")
}

func TestNPV(t *testing.T) {
	cf := []float64{-1000, 500, 500, 500}
	assert.InDelta(t, 243.4259955, calc.NPV(0.10, cf), 1e-6)
	assert.InDelta(t, 500.0, calc.NPV(0, []float64{-1000, 1500}), 1e-9, "zero rate sums the flows")
}

func TestIRR(t *testing.T) {
	cf := []float64{-1000, 500, 500, 500}

	irr, err := calc.IRR(cf)
	require.NoError(t, err)

	assert.Greater(t, irr, 0.23)
	assert.Less(t, irr, 0.24)
	assert.InDelta(t, 0.0, calc.NPV(irr, cf), 1e-4, "NPV at the IRR is zero")
}

func TestIRR_NoRoot(t *testing.T) {
	_, err := calc.IRR([]float64{100, 100, 100})
	assert.ErrorIs(t, err, calc.ErrNoRoot)
}

func TestSensitivity(t *testing.T) {
	double := func(x float64) float64 { return 2 * x }

	points := calc.Sensitivity(100, 20, 2, double)

	require.Len(t, points, 5, "two steps per side plus the base")
	assert.Equal(t, -20.0, points[0].DeltaPercent)
	assert.InDelta(t, 80.0, points[0].Input, 1e-9)
	assert.InDelta(t, 160.0, points[0].Output, 1e-9)

	mid := points[2]
	assert.Zero(t, mid.DeltaPercent)
	assert.InDelta(t, 200.0, mid.Output, 1e-9)

	assert.InDelta(t, 240.0, points[4].Output, 1e-9)
}

func TestSensitivity_Degenerate(t *testing.T) {
	assert.Nil(t, calc.Sensitivity(100, 20, 2, nil))

	points := calc.Sensitivity(100, 0, 2, math.Sqrt)
	require.Len(t, points, 1, "no spread evaluates only the base")
	assert.InDelta(t, 10.0, points[0].Output, 1e-9)
}
