package calc

import (
	"errors"
	"math"
)

// ErrNoRoot indicates the cash-flow series has no internal rate of return
// inside the search interval (for example, all-positive flows).
var ErrNoRoot = errors.New("calc: irr not bracketed by search interval")

// IRR bisection bounds and stopping criteria.
const (
	irrLow        = -0.99
	irrHigh       = 10.0
	irrTolerance  = 1e-7
	irrBisections = 200
)

// NPV returns the net present value of yearly cash flows at the given
// discount rate. cashflows[0] is year zero (typically the negative
// capital outlay) and is not discounted.
func NPV(rate float64, cashflows []float64) float64 {
	npv := 0.0
	for year, cf := range cashflows {
		npv += cf / math.Pow(1+rate, float64(year))
	}

	return npv
}

// IRR returns the discount rate at which NPV is zero, found by bisection
// over [-99%, 1000%]. Returns ErrNoRoot when the series does not change
// sign over that interval.
func IRR(cashflows []float64) (float64, error) {
	lo, hi := irrLow, irrHigh
	fLo := NPV(lo, cashflows)
	fHi := NPV(hi, cashflows)
	if fLo*fHi > 0 {
		return 0, ErrNoRoot
	}

	for i := 0; i < irrBisections; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, cashflows)
		if math.Abs(fMid) < irrTolerance || hi-lo < irrTolerance {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	return (lo + hi) / 2, nil
}

// SensitivityPoint is one evaluation of a ± sweep.
type SensitivityPoint struct {
	// DeltaPercent is the applied change to the base input, %.
	DeltaPercent float64
	// Input is the perturbed value.
	Input float64
	// Output is eval(Input).
	Output float64
}

// Sensitivity evaluates eval over base ± spreadPercent in the given number
// of steps per side, including the base itself. A nil eval returns nil;
// steps < 1 or spreadPercent ≤ 0 evaluate only the base.
func Sensitivity(base, spreadPercent float64, steps int, eval func(float64) float64) []SensitivityPoint {
	if eval == nil {
		return nil
	}
	if steps < 1 || spreadPercent <= 0 {
		return []SensitivityPoint{{Input: base, Output: eval(base)}}
	}

	points := make([]SensitivityPoint, 0, 2*steps+1)
	for i := -steps; i <= steps; i++ {
		delta := spreadPercent * float64(i) / float64(steps)
		in := base * (1 + delta/100)
		points = append(points, SensitivityPoint{
			DeltaPercent: delta,
			Input:        in,
			Output:       eval(in),
		})
	}

	return points
}
