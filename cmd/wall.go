package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

var (
	wallFlags designFlags

	wallType string
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Design a continuous footing under a wall",
	Long: `Size a continuous strip footing under a concrete or masonry wall.

The design works on a 1 ft strip of wall. The width follows from the
bearing area and the depth is the smallest satisfying one-way shear at
d from the wall face and flexure at the critical section: the wall face
for concrete walls, halfway between the centerline and the face for
masonry walls.

Units: wall thickness (in), loads (kips/ft), f'c (psi), grade (ksi),
soil pressure (psf), bottom and precision (ft).

Examples:
  # 12 in concrete wall
  gofooting wall --width 12 --wall-type concrete --dead 10 --live 12.5 \
    --fc 3000 --grade 60 --asp 4000 --bottom 5

  # Masonry wall rounded to half feet, with the step-by-step narrative
  gofooting wall -w 12 --wall-type masonry -d 10 -l 12.5 --fc 3000 \
    --grade 60 --asp 4000 -p 0.5 --narrate`,
	RunE: runWall,
}

func init() {
	rootCmd.AddCommand(wallCmd)

	wallFlags.register(wallCmd, "Wall thickness (in)", "kips/ft")

	wallCmd.Flags().StringVar(&wallType, "wall-type", "", "Wall material: concrete or masonry [required]")
	wallCmd.MarkFlagRequired("wall-type")
}

func runWall(cmd *cobra.Command, args []string) error {
	rec := wallFlags.record(cmd, footing.Wall)
	rec.WallType = &wallType
	return wallFlags.design(cmd, rec)
}
