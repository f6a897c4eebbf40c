// Package calc collects the scalar metallurgical and economic formulas
// used around the balance engine: Bond comminution energy, two-product
// flotation accounting, and discounted cash-flow evaluation.
//
// Every function is pure. Physically meaningless inputs (zero sizes,
// degenerate grade triples) return zero rather than NaN, matching the
// engine's never-fail philosophy; only IRR can fail, and only when the
// cash-flow series brackets no root.
//
// What
//
//   - BondEnergy / MillPower: specific energy (kWh/t) and power draw (kW)
//     from the Bond work index.
//   - TwoProductRecovery / RatioOfConcentration: assay-based accounting
//     for a feed/concentrate/tailing triple.
//   - NPV / IRR / Sensitivity: project economics over yearly cash flows.
package calc
