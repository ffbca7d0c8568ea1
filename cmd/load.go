package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/units"
)

var (
	// Service loads (kips or kips/ft)
	loadDead float64
	loadLive float64

	// Plan area for the factored net pressure (ft²)
	loadArea float64
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored footing load using the gravity combinations",
	Long: `Calculate the factored load (Pu) on a footing from its service dead and
live loads using the ACI 318 gravity combinations:

  5.3.1a  1.4D
  5.3.1b  1.2D + 1.6L

Give a plan area to also get the factored net soil pressure qu = Pu / A.

Examples:
  gofooting load --dead 175 --live 175
  gofooting load -d 175 -l 175 --area 80.5`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Service dead load (kips or kips/ft)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Service live load (kips or kips/ft)")
	loadCmd.Flags().Float64VarP(&loadArea, "area", "a", 0, "Footing plan area (ft²)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	loads := aci.Loads{Dead: loadDead, Live: loadLive}
	if loads.Dead <= 0 && loads.Live <= 0 {
		return errors.New("provide at least one service load, see 'gofooting load --help'")
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ACI 318 FACTORED FOOTING LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SERVICE LOADS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loads.Dead)
	fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loads.Live)
	fmt.Fprintf(w, "  Service (D + L):\t%.2f\n", loads.Service())
	w.Flush()
	fmt.Println()

	pu, governing := aci.CalculateGoverningLoad(loads, aci.GravityCombinations)

	fmt.Println("LOAD COMBINATIONS (ACI 318 Section 5.3.1):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tPu\n")
	fmt.Fprintf(w, "  ─\t───────────\t──\n")
	for _, combo := range aci.GravityCombinations {
		marker := ""
		if combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.CalculateFactoredLoad(loads), marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD (Pu) = %.2f  \n", pu)
	if loadArea > 0 {
		fmt.Printf("  ║  qu = Pu / A = %.1f psf  \n", units.KipsToPounds(pu)/loadArea)
	}
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
	return nil
}
