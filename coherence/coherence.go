package coherence

import (
	"fmt"
	"math"

	"github.com/minproc/flowbal/core"
)

// Finding class prefixes. Reports are plain strings by contract: the
// consuming layer (notification panel, CLI) only ever displays them.
const (
	ErrorPrefix   = "ERROR: "
	WarningPrefix = "WARNING: "
)

// OKMarker is the single finding emitted by a clean scan.
const OKMarker = "OK: all streams coherent"

// GradeSumTolerance (percentage points) is the accepted drift of a
// stream's total active grade from 100.
const GradeSumTolerance = 0.1

// Check scans the final streams and returns an ordered findings list.
// It never mutates stream data.
func Check(streams []*core.Stream, components []*core.MineralComponent) []string {
	var findings []string

	for _, s := range streams {
		findings = append(findings, checkStream(s, components)...)
	}
	if len(findings) == 0 {
		findings = append(findings, OKMarker)
	}

	return findings
}

// checkStream validates one stream: grade ranges, grade total, solids
// percent, and density.
func checkStream(s *core.Stream, components []*core.MineralComponent) []string {
	var findings []string

	total := 0.0
	for _, c := range components {
		if !c.Active {
			continue
		}
		g := s.Grades[c.ID]
		total += g
		if g < 0 || g > 100 {
			findings = append(findings, fmt.Sprintf(
				"%sstream %s: component %s grade %.2f%% outside [0,100]",
				ErrorPrefix, s.ID, c.ID, g))
		}
	}

	// Zero totals are accepted: normalization skips them too.
	if total != 0 && math.Abs(total-100) > GradeSumTolerance {
		findings = append(findings, fmt.Sprintf(
			"%sstream %s: active component grades sum to %.2f%%, expected 100%%",
			WarningPrefix, s.ID, total))
	}

	if s.SolidsPercent < 0 || s.SolidsPercent > 100 {
		findings = append(findings, fmt.Sprintf(
			"%sstream %s: solids percent %.2f outside [0,100]",
			ErrorPrefix, s.ID, s.SolidsPercent))
	}
	if s.Density <= 0 {
		findings = append(findings, fmt.Sprintf(
			"%sstream %s: non-positive density %.3f t/m³",
			ErrorPrefix, s.ID, s.Density))
	}

	return findings
}
