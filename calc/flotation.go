package calc

// TwoProductRecovery returns the component recovery (%) for a
// feed/concentrate/tailing assay triple by the two-product formula:
//
//	R = 100 · c·(f − t) / (f·(c − t))
//
// A degenerate triple (f ≤ 0 or c == t) returns 0.
func TwoProductRecovery(feedGrade, concGrade, tailGrade float64) float64 {
	if feedGrade <= 0 || concGrade == tailGrade {
		return 0
	}

	return 100 * concGrade * (feedGrade - tailGrade) / (feedGrade * (concGrade - tailGrade))
}

// RatioOfConcentration returns the tonnes of feed per tonne of
// concentrate:
//
//	K = (c − t) / (f − t)
//
// A degenerate triple (f == t) returns 0.
func RatioOfConcentration(feedGrade, concGrade, tailGrade float64) float64 {
	if feedGrade == tailGrade {
		return 0
	}

	return (concGrade - tailGrade) / (feedGrade - tailGrade)
}
