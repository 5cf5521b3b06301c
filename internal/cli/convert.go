package cli

import (
	"fmt"
	"os"

	"github.com/kinetics-io/mech2ck/internal/chemkin"
	"github.com/kinetics-io/mech2ck/internal/mech"
	"github.com/spf13/cobra"
)

var (
	outPath   string
	scalePath string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <mechanism.yaml>",
	Short: "Convert a single mechanism to CHEMKIN format",
	Long: `Convert reads a YAML mechanism and writes a CHEMKIN-format .inp file:
- ELEMENTS, SPECIES and REACTIONS sections in fixed-column layout
- THERMO ALL section when every species carries NASA-7 data
- Optional per-reaction scale factors applied to pre-exponential factors

The scale-factor file holds one positive real per line, one per reaction
in mechanism order. Blank lines and # comments are ignored.

Example:
  mech2ck convert gri30.yaml -o chem.inp
  mech2ck convert gri30.yaml -o chem.inp --scale factors.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outPath, "output", "o", "chem.inp", "output mechanism path")
	convertCmd.Flags().StringVar(&scalePath, "scale", "", "scale-factor file (one factor per reaction)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	mechPath := args[0]

	if verbose {
		fmt.Fprintf(os.Stderr, "Converting: %s\n", mechPath)
		fmt.Fprintf(os.Stderr, "Output: %s\n", outPath)
		fmt.Fprintln(os.Stderr)
	}

	m, err := mech.Load(mechPath)
	if err != nil {
		return fmt.Errorf("load mechanism: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d elements, %d species, %d reactions\n",
			len(m.Elements), len(m.Species), m.NReactions())
	}

	var factors []float64
	if scalePath != "" {
		factors, err = mech.ReadScaleFactors(scalePath)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Loaded %d scale factors\n", len(factors))
		}
	}

	written, err := chemkin.Write(m, factors, outPath)
	if err != nil {
		return fmt.Errorf("write mechanism: %w", err)
	}

	fmt.Printf("✓ Wrote %s\n", written)
	return nil
}
