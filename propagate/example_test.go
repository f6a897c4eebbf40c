package propagate_test

import (
	"fmt"

	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/propagate"
)

// ExamplePropagate fills a crusher product that arrived with no data at all:
// the feed donates flow, solids and assay, and the result is a fixed point.
func ExamplePropagate() {
	streams := []*core.Stream{
		{ID: "feed", To: "cr1", FlowRate: 1000, SolidsPercent: 80,
			Grades: map[string]float64{"fe": 35, "gangue": 65}},
		{ID: "prod", From: "cr1"},
	}
	comps := []*core.MineralComponent{
		{ID: "fe", DefaultGrade: 30, Active: true},
		{ID: "gangue", DefaultGrade: 70, Active: true},
	}

	out, stats := propagate.Propagate(streams, comps)

	fmt.Printf("prod flow=%.0f t/h fe=%.0f%%\n", out[1].FlowRate, out[1].Grades["fe"])
	fmt.Printf("changes=%d\n", stats.Changes)

	_, again := propagate.Propagate(out, comps)
	fmt.Printf("second run changes=%d\n", again.Changes)

	// Output:
	// prod flow=1000 t/h fe=35%
	// changes=3
	// second run changes=0
}
