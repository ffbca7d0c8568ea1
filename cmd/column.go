package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

var (
	columnFlags designFlags

	columnRestriction float64
	columnLocation    string
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Design an isolated footing under a square column",
	Long: `Size a spread footing under a square concrete column.

The footing is square unless a width restriction is given and the
square would exceed it; the width is then held at the restriction and
the length grows to recover the bearing area. The depth is the smallest
satisfying one-way shear in both directions, punching shear around the
column and flexure at the column faces.

Units: column width (in), loads (kips), f'c (psi), grade (ksi),
soil pressure (psf), restriction, bottom and precision (ft).

Examples:
  # 18 in interior column, footing no wider than 7 ft, half foot rounding
  gofooting column --width 18 --dead 175 --live 175 --fc 3000 --grade 60 \
    --asp 5000 --restriction 7 --precision 0.5

  # Corner column with plan and PNG export
  gofooting column -w 16 -d 200 -l 150 --fc 4000 --grade 60 --asp 4000 \
    --location corner --diagram -o plan.png`,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnFlags.register(columnCmd, "Column width (in)", "kips")

	// Column constraints
	columnCmd.Flags().Float64VarP(&columnRestriction, "restriction", "r", 0, "Maximum footing width (ft)")
	columnCmd.Flags().StringVar(&columnLocation, "location", "interior", "Column location: interior, edge or corner")
}

func runColumn(cmd *cobra.Command, args []string) error {
	rec := columnFlags.record(cmd, footing.Column)
	if cmd.Flags().Changed("restriction") {
		rec.WidthRestriction = &columnRestriction
	}
	if cmd.Flags().Changed("location") {
		rec.ColumnLocation = &columnLocation
	}
	return columnFlags.design(cmd, rec)
}
