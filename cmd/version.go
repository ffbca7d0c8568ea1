package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofooting",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofooting v%s\n", version.Version)
		fmt.Printf("commit: %s\nbuilt: %s\n", version.GitCommit, version.BuildTime)
		fmt.Println("Reinforced Concrete Footing Design Tool (ACI 318)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
