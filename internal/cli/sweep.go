package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/kinetics-io/mech2ck/internal/mech"
	"github.com/kinetics-io/mech2ck/internal/model"
	"github.com/kinetics-io/mech2ck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	sweepFactor float64
	sweepOutDir string
	sweepPrefix string
	concurrency int
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep <mechanism.yaml>",
	Short: "Write one perturbed mechanism file per reaction",
	Long: `Sweep generates a sensitivity-analysis input deck:
- Write one CHEMKIN mechanism file per reaction
- File i scales reaction i's pre-exponential factor by --factor
- All other reactions keep their nominal rates
- Files are written in parallel with configurable worker count

Output files are named <prefix>_<reaction index>, starting at 0.

Example:
  mech2ck sweep gri30.yaml
  mech2ck sweep gri30.yaml --factor 10 --output-dir ./sweep --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	defaults := model.DefaultConfig()
	sweepCmd.Flags().Float64Var(&sweepFactor, "factor", defaults.Sweep.Factor, "perturbation factor applied to one reaction per file")
	sweepCmd.Flags().StringVar(&sweepOutDir, "output-dir", "./mech2ck-sweep", "output directory for perturbed mechanisms")
	sweepCmd.Flags().StringVar(&sweepPrefix, "prefix", defaults.Sweep.FilePrefix, "output file name prefix")
	sweepCmd.Flags().IntVar(&concurrency, "workers", runtime.NumCPU(), "number of concurrent writers")
}

func runSweep(cmd *cobra.Command, args []string) error {
	mechPath := args[0]

	m, err := mech.Load(mechPath)
	if err != nil {
		return fmt.Errorf("load mechanism: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  mech2ck Sensitivity Sweep\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Mechanism:  %s\n", mechPath)
	fmt.Fprintf(os.Stderr, "  Reactions:  %d\n", m.NReactions())
	fmt.Fprintf(os.Stderr, "  Factor:     %g\n", sweepFactor)
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", sweepOutDir)
	fmt.Fprintf(os.Stderr, "\n")

	if sweepFactor <= 0 {
		return fmt.Errorf("perturbation factor must be positive, got %g", sweepFactor)
	}

	// Create output directory
	if err := os.MkdirAll(sweepOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	runner := worker.NewSweepRunner(concurrency, sweepFactor)
	results := runner.Run(context.Background(), m, sweepOutDir, sweepPrefix)

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ reaction %d: %v\n", result.Index, result.Err)
			continue
		}
		successCount++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s (%s)\n", result.Path, m.Reactions[result.Index].Equation)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Sweep Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", sweepOutDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d sweep files failed", failureCount, len(results))
	}
	return nil
}
