package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/batch"
	"github.com/alexiusacademia/gofooting/internal/version"
)

var (
	verbose    bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "gofooting",
	Short: "Reinforced Concrete Footing Design Tool",
	Long: `gofooting - Go Reinforced Concrete Footing Designer

A CLI tool for the design of isolated column footings and continuous
wall footings based on ACI 318 strength design.

This tool sizes footings for:
  - Bearing on the allowable soil pressure
  - One-way (beam) shear and two-way (punching) shear
  - Flexural reinforcement at the critical sections

Dimensions are rounded to a chosen precision and the depth is the
smallest one satisfying every check.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofooting v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Footing Designer                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of column and wall footings")
		fmt.Println("  based on ACI 318 strength design.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored load calculation using the gravity combinations")
		fmt.Println("    • Square and width-restricted column footings")
		fmt.Println("    • Concrete and masonry wall footings")
		fmt.Println("    • Batch design from JSON, YAML, TOML or Excel records")
		fmt.Println()
		fmt.Println("  Use 'gofooting --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "TOML file with a [defaults] table for optional record fields")
}

// loadDefaults returns the built-in defaults, overridden by --config
func loadDefaults(cmd *cobra.Command) (batch.Defaults, error) {
	if configFile == "" {
		return batch.DefaultDefaults(), nil
	}
	def, err := batch.LoadDefaults(configFile)
	if err != nil {
		return batch.Defaults{}, err
	}
	loggerFromContext(cmd.Context()).Debug("loaded defaults", "config", configFile)
	return def, nil
}
