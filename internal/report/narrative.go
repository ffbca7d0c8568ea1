package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/footing"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

type narrator struct {
	w *bufio.Writer
}

func (n narrator) title(s string) {
	fmt.Fprintln(n.w, doubleRule)
	fmt.Fprintf(n.w, "  %s\n", s)
	fmt.Fprintln(n.w, doubleRule)
	fmt.Fprintln(n.w)
}

func (n narrator) section(s string) {
	fmt.Fprintln(n.w, s)
	fmt.Fprintln(n.w, singleRule)
}

// table runs fn against a tabwriter and ends the section with a blank line
func (n narrator) table(fn func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(n.w, 0, 0, 2, ' ', 0)
	fn(tw)
	tw.Flush()
	fmt.Fprintln(n.w)
}

// WriteNarrative writes the step-by-step design of one footing
func WriteNarrative(w io.Writer, in footing.DesignInput, d *footing.FootingDesign) error {
	n := narrator{w: bufio.NewWriter(w)}

	n.title(fmt.Sprintf("FOOTING DESIGN FOR %s", strings.ToUpper(label(in))))
	writeInput(n, in)
	writeLoads(n, in, d)
	writeBearing(n, in, d)
	writeTrials(n, d)
	writeChecks(n, d)
	writeFlexure(n, d)

	n.section("RESULT:")
	n.table(func(tw *tabwriter.Writer) {
		if d.Kind == footing.Wall {
			fmt.Fprintf(tw, "  Footing width:\t%s\t(%.3f ft)\n", FormatFeetInches(d.Width), d.Width)
		} else {
			fmt.Fprintf(tw, "  Footing length:\t%s\t(%.3f ft)\n", FormatFeetInches(d.Length), d.Length)
			fmt.Fprintf(tw, "  Footing width:\t%s\t(%.3f ft)\n", FormatFeetInches(d.Width), d.Width)
		}
		fmt.Fprintf(tw, "  Footing depth:\t%s\t(%.3f ft)\n", FormatFeetInches(d.Depth), d.Depth)
		fmt.Fprintf(tw, "  Effective depth:\t%.2f in\t\n", d.EffectiveDepth)
		for i, as := range d.SteelAreas {
			fmt.Fprintf(tw, "  %s:\t%s\t\n", steelLabel(d, i), FormatSteel(as))
		}
		fmt.Fprintf(tw, "  Iterations:\t%d\t\n", d.Iterations)
	})

	return n.w.Flush()
}

// WriteFailure writes the narrative of a record that could not be designed
func WriteFailure(w io.Writer, in footing.DesignInput, err error) error {
	n := narrator{w: bufio.NewWriter(w)}

	n.title(fmt.Sprintf("FOOTING DESIGN FOR %s", strings.ToUpper(label(in))))
	if in.Kind != "" {
		writeInput(n, in)
	}

	n.section("DESIGN FAILED:")
	fmt.Fprintf(n.w, "  %v\n", err)

	var sizing *footing.SizingError
	if errors.As(err, &sizing) {
		g := sizing.Trial
		fmt.Fprintln(n.w)
		n.table(func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "  Failing check:\t%s\n", sizing.Check)
			fmt.Fprintf(tw, "  Last trial plan:\t%.3f x %.3f ft\n", g.Length, g.Width)
			fmt.Fprintf(tw, "  Last trial depth:\t%.3f ft\n", g.Depth)
		})
	}
	return n.w.Flush()
}

func label(in footing.DesignInput) string {
	if in.ID == "" {
		return "footing"
	}
	return in.ID
}

func writeInput(n narrator, in footing.DesignInput) {
	n.section("INPUT:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Footing type:\t%s\n", in.Kind)
		if in.Kind == footing.Wall {
			fmt.Fprintf(tw, "  Wall thickness:\t%.2f in (%s)\n", in.Width, in.WallType)
			fmt.Fprintf(tw, "  Dead load:\t%.2f k/ft\n", in.DeadLoad)
			fmt.Fprintf(tw, "  Live load:\t%.2f k/ft\n", in.LiveLoad)
		} else {
			fmt.Fprintf(tw, "  Column width:\t%.2f in (%s)\n", in.Width, in.ColumnLocation)
			fmt.Fprintf(tw, "  Dead load:\t%.2f k\n", in.DeadLoad)
			fmt.Fprintf(tw, "  Live load:\t%.2f k\n", in.LiveLoad)
			if in.WidthRestriction != nil {
				fmt.Fprintf(tw, "  Width restriction:\t%.3f ft\n", *in.WidthRestriction)
			}
		}
		lambda, _ := aci.Lambda(in.ConcreteType)
		fmt.Fprintf(tw, "  f'c:\t%.0f psi\n", in.Fc)
		fmt.Fprintf(tw, "  fy:\t%.0f psi\n", in.Grade*1000)
		fmt.Fprintf(tw, "  Concrete:\t%s (λ = %.2f), %.0f pcf\n", in.ConcreteType, lambda, in.ConcreteUnitWeight)
		fmt.Fprintf(tw, "  Earth:\t%.0f pcf\n", in.EarthUnitWeight)
		fmt.Fprintf(tw, "  Allowable soil pressure:\t%.0f psf\n", in.AllowableSoilPressure)
		fmt.Fprintf(tw, "  Bottom of footing:\t%.2f ft below grade\n", in.BottomOfFooting)
		fmt.Fprintf(tw, "  Precision:\t%.4f ft\n", in.Precision)
	})
}

func writeLoads(n narrator, in footing.DesignInput, d *footing.FootingDesign) {
	loads := in.Loads()
	n.section("LOAD COMBINATIONS:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  #\tCombination\tPu\n")
		fmt.Fprintf(tw, "  ─\t───────────\t──\n")
		for _, combo := range aci.GravityCombinations {
			marker := ""
			if combo.ID == d.Combination.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.CalculateFactoredLoad(loads), marker)
		}
		fmt.Fprintf(tw, "  \tService (D + L)\t%.2f\n", loads.Service())
	})
}

func writeBearing(n narrator, in footing.DesignInput, d *footing.FootingDesign) {
	n.section("BEARING AREA:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Net allowable pressure qe:\t%.1f psf\n", d.NetPressure)
		fmt.Fprintf(tw, "  Required area (D + L)/qe:\t%.3f ft²\n", d.RequiredArea)
		if d.Kind == footing.Wall {
			fmt.Fprintf(tw, "  Provided width:\t%.3f ft per %.0f ft strip\n", d.Width, d.Length)
		} else {
			fmt.Fprintf(tw, "  Provided plan:\t%.3f x %.3f ft = %.3f ft²\n", d.Length, d.Width, d.Length*d.Width)
			if in.Restricted() && !d.IsSquare() {
				fmt.Fprintf(tw, "  Width held by restriction:\t%.3f ft\n", *in.WidthRestriction)
			}
		}
		fmt.Fprintf(tw, "  Factored net pressure qu:\t%.1f psf\n", d.FactoredPressure)
	})
}

func writeTrials(n narrator, d *footing.FootingDesign) {
	if len(d.Trials) == 0 {
		return
	}
	n.section("DEPTH SEARCH:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  h (in)\td (in)\tGoverning\tRatio\tStatus\n")
		fmt.Fprintf(tw, "  ──────\t──────\t─────────\t─────\t──────\n")
		for _, t := range d.Trials {
			gov, _ := t.Result.Governing()
			status := "OK"
			if failed := t.Result.Failed(); len(failed) > 0 {
				kinds := make([]string, len(failed))
				for i, k := range failed {
					kinds[i] = string(k)
				}
				status = "NG (" + strings.Join(kinds, ", ") + ")"
			}
			fmt.Fprintf(tw, "  %.2f\t%.2f\t%s\t%.3f\t%s\n",
				t.Geometry.Depth*12, t.Geometry.EffectiveDepth, gov.Kind, gov.Ratio(), status)
		}
	})
}

func writeChecks(n narrator, d *footing.FootingDesign) {
	n.section("CAPACITY CHECKS:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Check\tDemand\tCapacity\tRatio\tStatus\n")
		fmt.Fprintf(tw, "  ─────\t──────\t────────\t─────\t──────\n")
		for _, c := range d.Checks.Checks {
			status := "✓ OK"
			if !c.Passed {
				status = "✗ NG"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%.3f\t%s\n", c.Kind,
				checkValue(c.Kind, c.Demand), checkValue(c.Kind, c.Capacity), c.Ratio(), status)
		}
	})
}

func checkValue(kind capacity.CheckKind, v float64) string {
	switch kind {
	case capacity.Bearing:
		return fmt.Sprintf("%.1f psf", v)
	case capacity.Flexure:
		return fmt.Sprintf("%.2f ft-k", v)
	}
	return fmt.Sprintf("%.2f k", v/1000)
}

func writeFlexure(n narrator, d *footing.FootingDesign) {
	n.section("FLEXURE:")
	n.table(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "  Direction\tMu (ft-k)\tRn (psi)\tρ\tρmin\tAs (in²)\n")
		fmt.Fprintf(tw, "  ─────────\t─────────\t────────\t─\t────\t────────\n")
		for i, f := range d.Flexure {
			fmt.Fprintf(tw, "  %s\t%.2f\t%.1f\t%.5f\t%.5f\t%.3f\n",
				steelLabel(d, i), f.Mu, f.Rn, f.RhoRequired, f.RhoMin, f.AsRequired)
		}
	})
	for _, f := range d.Flexure {
		fmt.Fprintf(n.w, "  %s\n", f.Message)
	}
	fmt.Fprintln(n.w)
}

// steelLabel names the i-th steel area of a design
func steelLabel(d *footing.FootingDesign, i int) string {
	switch {
	case d.Kind == footing.Wall:
		return "Transverse steel per ft"
	case len(d.SteelAreas) == 1:
		return "Steel each way"
	case i == 0:
		return "Long bars (along length)"
	}
	return "Short bars (along width)"
}
