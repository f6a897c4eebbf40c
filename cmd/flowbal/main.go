// Command flowbal loads a flowsheet document, reconciles it, and prints a
// plant-style report.
//
// Usage:
//
//	flowbal -file circuit.yaml [-max-iterations 50] [-tolerance 0.001]
//	        [-topo] [-verbose]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/minproc/flowbal/balance"
	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/fsio"
	"github.com/minproc/flowbal/sim"
	"github.com/minproc/flowbal/solve"
)

func main() {
	var (
		file          = flag.String("file", "", "flowsheet document (.yaml, .yml or .json)")
		maxIterations = flag.Int("max-iterations", solve.DefaultMaxIterations, "iteration cap")
		tolerance     = flag.Float64("tolerance", solve.DefaultTolerance, "convergence threshold, % boundary error")
		topo          = flag.Bool("topo", false, "process equipment upstream-first")
		verbose       = flag.Bool("verbose", false, "per-iteration debug logging")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "flowbal: -file is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	fs, err := fsio.Load(*file)
	if err != nil {
		logger.Error("load failed", zap.String("file", *file), zap.Error(err))
		os.Exit(1)
	}

	solveOpts := []solve.Option{
		solve.WithMaxIterations(*maxIterations),
		solve.WithTolerance(*tolerance),
	}
	if *topo {
		solveOpts = append(solveOpts, solve.WithTopologicalOrder())
	}

	rep, err := sim.Run(fs,
		sim.WithLogger(logger),
		sim.WithSolveOptions(solveOpts...),
	)
	if err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}

	printReport(fs, rep)

	if rep.Iterative != nil && !rep.Iterative.Converged {
		os.Exit(3)
	}
}

// newLogger builds the CLI logger: production JSON by default, colorful
// development output with -verbose.
func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowbal: logger:", err)
		os.Exit(1)
	}

	return logger
}

// printReport renders the run to stdout.
func printReport(fs *core.Flowsheet, rep *sim.Report) {
	if it := rep.Iterative; it != nil {
		fmt.Printf("state: %s after %d iteration(s), max boundary error %.6f%%\n\n",
			it.State, it.Iterations, it.MaxError)
	} else {
		fmt.Printf("state: simplified single-pass simulation\n\n")
	}

	fmt.Println("streams:")
	for _, s := range rep.Streams {
		fmt.Printf("  %-12s %9.2f t/h  %5.1f%% solids  P80 %7.3f mm",
			s.ID, s.FlowRate, s.SolidsPercent, s.ParticleSize)
		for _, c := range fs.ActiveComponents() {
			fmt.Printf("  %s %6.2f%%", c.ID, s.Grades[c.ID])
		}
		fmt.Println()
	}

	fmt.Println("\nequipment:")
	for _, er := range rep.Equipment {
		fmt.Printf("  %-12s %-10s feed %9.2f t/h  product P80 %7.3f mm  power %8.1f kW\n",
			er.EquipmentID, er.Kind, er.FeedRate, er.ProductSize, er.PowerDraw)
	}

	if res, err := balance.AnalyzeCircuitBalance(fs); err == nil {
		fmt.Println("\nboundary balance (as loaded):")
		fmt.Printf("  bulk: in %.2f t/h, out %.2f t/h (%.4f%% off)\n",
			res.Global.In, res.Global.Out, res.Global.Relative)
		for _, cb := range res.Components {
			fmt.Printf("  %-8s in %.2f t/h, out %.2f t/h (%.4f%% off)\n",
				cb.ComponentID, cb.In, cb.Out, cb.Relative)
		}
	}

	fmt.Println("\ncoherence:")
	for _, finding := range rep.Coherence {
		fmt.Println("  " + finding)
	}
}
