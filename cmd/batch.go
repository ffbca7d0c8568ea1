package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/batch"
	"github.com/alexiusacademia/gofooting/internal/footing"
	"github.com/alexiusacademia/gofooting/internal/report"
)

var (
	batchInput        string
	batchOutput       string
	batchNarrationDir string
	batchPDF          string
	batchWorkers      int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Design every footing record of an input file",
	Long: `Design a set of footings read from a JSON, YAML, TOML or Excel file.

Each record uses the field names below. Optional fields take their
value from the defaults, which a --config TOML file can override.

  id, ftng_type (column|wall), width, dead_load, live_load, f_c, grade,
  a_s_p, conc_type, w_c, w_e, bottom_of_ftng, precision,
  wall_type (walls), width_restriction and col_loc (columns)

TOML files list records as [[footing]] tables; Excel files use the first
sheet with the field names in the first row.

A record that cannot be designed is reported with its error and does
not stop the others. Results keep the input order.

Examples:
  gofooting batch --input input/ex1.json --output output/output.json \
    --narration-dir output

  gofooting batch -i footings.xlsx --pdf sheets.pdf --config defaults.toml`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "Record file (.json, .yaml, .toml, .xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write JSON results to this file instead of stdout")
	batchCmd.Flags().StringVar(&batchNarrationDir, "narration-dir", "", "Write a <id>.txt design narrative per record into this directory")
	batchCmd.Flags().StringVar(&batchPDF, "pdf", "", "Write a PDF design sheet with one page per record")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Number of records designed at once (default: number of CPUs)")
	batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	def, err := loadDefaults(cmd)
	if err != nil {
		return err
	}
	records, err := batch.LoadFile(batchInput)
	if err != nil {
		return err
	}
	logger.Info("loaded records", "file", batchInput, "count", len(records))

	results, err := batch.Run(ctx, records, batch.Options{
		Workers:  batchWorkers,
		Defaults: def,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if err := writeResults(results); err != nil {
		return err
	}
	if batchNarrationDir != "" {
		if err := batch.WriteNarrations(batchNarrationDir, results); err != nil {
			return err
		}
		logger.Info("wrote narratives", "dir", batchNarrationDir)
	}
	if batchPDF != "" {
		if err := writePDF(batchPDF, batch.Sheets(results)); err != nil {
			return err
		}
		logger.Info("wrote design sheet", "file", batchPDF)
	}

	ok, failed := batch.Summary(results)
	if batchOutput != "" {
		printBatchSummary(results)
	}
	logger.Info("batch finished", "designed", ok, "failed", failed)
	if ok == 0 && failed > 0 {
		return errors.New("no record could be designed")
	}
	return nil
}

func writeResults(results []batch.Result) error {
	if batchOutput == "" {
		return batch.WriteJSON(os.Stdout, results)
	}
	out, err := os.Create(batchOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	if err := batch.WriteJSON(out, results); err != nil {
		return err
	}
	return out.Close()
}

// printBatchSummary prints one line per record
func printBatchSummary(results []batch.Result) {
	fmt.Println()
	fmt.Println("BATCH RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tType\tSize\tDepth\tSteel\n")
	fmt.Fprintf(w, "  ──\t────\t────\t─────\t─────\n")
	for _, r := range results {
		id := r.Record.Label(r.Index)
		if !r.OK() {
			fmt.Fprintf(w, "  %s\t%s\t✗ %v\t\t\n", id, r.Record.Type, r.Err)
			continue
		}
		d := r.Design
		size := report.FormatFeetInches(d.Width)
		if d.Kind == footing.Column {
			size = report.FormatFeetInches(d.Length) + " x " + size
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", id, d.Kind, size,
			report.FormatFeetInches(d.Depth), report.FormatSteelAreas(d.SteelAreas))
	}
	w.Flush()
	fmt.Println()
}
