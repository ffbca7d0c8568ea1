package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/batch"
	"github.com/alexiusacademia/gofooting/internal/diagram"
	"github.com/alexiusacademia/gofooting/internal/footing"
	"github.com/alexiusacademia/gofooting/internal/report"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// designFlags are the record fields and output options shared by the
// column and wall commands
type designFlags struct {
	id        string
	width     float64
	dead      float64
	live      float64
	fc        float64
	grade     float64
	asp       float64
	concType  string
	wc        float64
	we        float64
	bottom    float64
	precision float64

	// Output options
	showDiagram bool
	exportFile  string
	narrate     bool
	pdfFile     string
}

func (f *designFlags) register(cmd *cobra.Command, widthHelp, loadUnit string) {
	def := batch.DefaultDefaults()

	cmd.Flags().StringVar(&f.id, "id", "", "Footing mark used in reports")

	// Member and loading
	cmd.Flags().Float64VarP(&f.width, "width", "w", 0, widthHelp+" [required]")
	cmd.Flags().Float64VarP(&f.dead, "dead", "d", 0, "Service dead load ("+loadUnit+") [required]")
	cmd.Flags().Float64VarP(&f.live, "live", "l", 0, "Service live load ("+loadUnit+") [required]")

	// Materials
	cmd.Flags().Float64Var(&f.fc, "fc", 0, "Concrete compressive strength f'c (psi) [required]")
	cmd.Flags().Float64Var(&f.grade, "grade", 0, "Steel grade (ksi), e.g. 60 [required]")
	cmd.Flags().StringVar(&f.concType, "conc-type", def.ConcreteType, "Concrete type: nw, slw or lw")
	cmd.Flags().Float64Var(&f.wc, "wc", def.ConcreteUnitWeight, "Concrete unit weight (pcf)")

	// Site
	cmd.Flags().Float64Var(&f.asp, "asp", 0, "Allowable soil pressure (psf) [required]")
	cmd.Flags().Float64Var(&f.we, "we", def.EarthUnitWeight, "Earth unit weight (pcf)")
	cmd.Flags().Float64Var(&f.bottom, "bottom", def.BottomOfFooting, "Bottom of footing below grade (ft)")
	cmd.Flags().Float64VarP(&f.precision, "precision", "p", def.Precision, "Rounding precision of dimensions (ft)")

	for _, name := range []string{"width", "dead", "live", "fc", "grade", "asp"} {
		cmd.MarkFlagRequired(name)
	}

	// Output options
	cmd.Flags().BoolVar(&f.showDiagram, "diagram", false, "Show ASCII plan and section")
	cmd.Flags().StringVarP(&f.exportFile, "output", "o", "", "Export plan to file (png, svg, pdf)")
	cmd.Flags().BoolVar(&f.narrate, "narrate", false, "Print the step-by-step design narrative")
	cmd.Flags().StringVar(&f.pdfFile, "pdf", "", "Write a PDF design sheet")
}

// record builds a raw record from the flags. Optional flags that were not
// set stay absent so the configured defaults apply.
func (f *designFlags) record(cmd *cobra.Command, kind footing.Kind) batch.Record {
	rec := batch.Record{
		ID:       f.id,
		Type:     string(kind),
		Width:    &f.width,
		DeadLoad: &f.dead,
		LiveLoad: &f.live,
		Fc:       &f.fc,
		Grade:    &f.grade,
		ASP:      &f.asp,
	}
	changed := cmd.Flags().Changed
	if changed("conc-type") {
		rec.ConcreteType = &f.concType
	}
	if changed("wc") {
		rec.Wc = &f.wc
	}
	if changed("we") {
		rec.We = &f.we
	}
	if changed("bottom") {
		rec.Bottom = &f.bottom
	}
	if changed("precision") {
		rec.Precision = &f.precision
	}
	return rec
}

// design normalizes the record, sizes the footing and prints the report
func (f *designFlags) design(cmd *cobra.Command, rec batch.Record) error {
	logger := loggerFromContext(cmd.Context())

	def, err := loadDefaults(cmd)
	if err != nil {
		return err
	}
	in, err := batch.Normalize(rec, def)
	if err != nil {
		return err
	}
	if in.ID == "" {
		in.ID = string(in.Kind)
	}

	logger.Debug("sizing footing", "id", in.ID, "kind", in.Kind, "precision", in.Precision)
	d, err := footing.Size(in)
	if err != nil {
		return err
	}
	logger.Debug("converged", "iterations", d.Iterations, "trials", len(d.Trials))

	if f.narrate {
		if err := report.WriteNarrative(os.Stdout, in, d); err != nil {
			return err
		}
	} else {
		printDesign(in, d)
	}

	data := diagram.NewPlanData(in, d)
	if f.showDiagram {
		fmt.Println(diagram.DrawPlan(data))
		if d.Kind == footing.Column {
			fmt.Println(diagram.DrawSection(data))
		}
	}
	if f.exportFile != "" {
		if err := diagram.ExportPlan(data, f.exportFile); err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}
		logger.Info("exported plan", "file", f.exportFile)
	}
	if f.pdfFile != "" {
		if err := writePDF(f.pdfFile, []report.Sheet{{Input: in, Design: d}}); err != nil {
			return err
		}
		logger.Info("wrote design sheet", "file", f.pdfFile)
	}
	return nil
}

func writePDF(path string, sheets []report.Sheet) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating PDF: %w", err)
	}
	defer out.Close()
	if err := report.WritePDF(out, "", sheets); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return out.Close()
}

// printDesign prints the summary report of a sized footing
func printDesign(in footing.DesignInput, d *footing.FootingDesign) {
	title := "COLUMN FOOTING DESIGN - ACI 318"
	if d.Kind == footing.Wall {
		title = "WALL FOOTING DESIGN - ACI 318"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("BEARING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Service load (D + L):\t%.2f\n", in.Loads().Service())
	fmt.Fprintf(w, "  Factored load (%s):\t%.2f\n", d.Combination.Description, d.FactoredLoad)
	fmt.Fprintf(w, "  Net allowable pressure (qe):\t%.1f psf\n", d.NetPressure)
	fmt.Fprintf(w, "  Required area:\t%.3f ft²\n", d.RequiredArea)
	fmt.Fprintf(w, "  Factored net pressure (qu):\t%.1f psf\n", d.FactoredPressure)
	w.Flush()
	fmt.Println()

	fmt.Println("CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tRatio\tStatus\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────\n")
	gov, _ := d.Checks.Governing()
	for _, c := range d.Checks.Checks {
		status := "✓ OK"
		if !c.Passed {
			status = "✗ NG"
		}
		marker := ""
		if c.Kind == gov.Kind {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%s%s\n", c.Kind, c.Ratio(), status, marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	var lines []string
	if d.Kind == footing.Wall {
		lines = append(lines, fmt.Sprintf("WIDTH  = %s", report.FormatFeetInches(d.Width)))
	} else {
		lines = append(lines, fmt.Sprintf("PLAN   = %s x %s", report.FormatFeetInches(d.Length), report.FormatFeetInches(d.Width)))
	}
	lines = append(lines, fmt.Sprintf("DEPTH  = %s (d = %.2f in)", report.FormatFeetInches(d.Depth), d.EffectiveDepth))
	lines = append(lines, fmt.Sprintf("STEEL  = %s", report.FormatSteelAreas(d.SteelAreas)))
	fmt.Print(diagram.DrawSummaryBox(d.ID, lines))
	fmt.Println()

	printBarSuggestions(d)
}

// printBarSuggestions lists bar arrangements for each steel area
func printBarSuggestions(d *footing.FootingDesign) {
	fmt.Println("SUGGESTED BARS:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	h := units.FeetToInches(d.Depth)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if d.Kind == footing.Wall {
		fmt.Fprintf(w, "  Bars\tAs Provided\tRatio\n")
		fmt.Fprintf(w, "  ────\t───────────\t─────\n")
		for _, l := range aci.SpaceBars(d.SteelAreas[0], h) {
			fmt.Fprintf(w, "  #%d @ %.1f in\t%.3f in²/ft\t%.2f\n", l.Bar.Number, l.Spacing, l.Provided, l.Provided/d.SteelAreas[0])
		}
		w.Flush()
		fmt.Println()
		return
	}

	// bars spanning the length are spread across the width and vice versa
	strips := []float64{d.Width, d.Length}
	fmt.Fprintf(w, "  Direction\tBars\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ─────────\t────\t───────────\t─────\n")
	for i, as := range d.SteelAreas {
		dir := "each way"
		if len(d.SteelAreas) > 1 {
			dir = []string{"long", "short"}[i]
		}
		for _, l := range aci.LayoutBars(as, units.FeetToInches(strips[i]), h) {
			fmt.Fprintf(w, "  %s\t%d - #%d @ %.1f in\t%.2f in²\t%.2f\n", dir, l.Count, l.Bar.Number, l.Spacing, l.Provided, l.Provided/as)
		}
	}
	w.Flush()
	fmt.Println()
}
