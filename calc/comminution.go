package calc

import "math"

// BondEnergy returns the specific comminution energy in kWh/t by Bond's
// third theory:
//
//	W = 10 · Wi · (1/√P80 − 1/√F80)
//
// wi is the Bond work index (kWh/t), f80 and p80 the 80%-passing sizes of
// feed and product in µm. Non-positive sizes or work index return 0.
func BondEnergy(wi, f80, p80 float64) float64 {
	if wi <= 0 || f80 <= 0 || p80 <= 0 {
		return 0
	}

	return 10 * wi * (1/math.Sqrt(p80) - 1/math.Sqrt(f80))
}

// MillPower returns the mill power draw in kW for a specific energy in
// kWh/t and a throughput in t/h.
func MillPower(energy, throughput float64) float64 {
	if energy <= 0 || throughput <= 0 {
		return 0
	}

	return energy * throughput
}
