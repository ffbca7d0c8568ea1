package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gofooting/internal/footing"
)

// Sheet is one page of the PDF design sheet. Err is set when the record
// could not be designed.
type Sheet struct {
	Input  footing.DesignInput
	Design *footing.FootingDesign
	Err    error
}

// WritePDF writes a design sheet with one page per footing
func WritePDF(w io.Writer, title string, sheets []Sheet) error {
	if title == "" {
		title = "Footing Design Sheet"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	date := time.Now().Format("2006-01-02")

	row := func(name, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(70, 6, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}
	heading := func(s string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(s), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	for _, s := range sheets {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, tr(title))
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Footing: %s    Date: %s", label(s.Input), date)))
		pdf.Ln(8)

		in := s.Input
		if in.Kind != "" {
			heading("Input")
			row("Footing type", string(in.Kind))
			if in.Kind == footing.Wall {
				row("Wall thickness", fmt.Sprintf("%.2f in (%s)", in.Width, in.WallType))
				row("Dead / live load", fmt.Sprintf("%.2f / %.2f k/ft", in.DeadLoad, in.LiveLoad))
			} else {
				row("Column width", fmt.Sprintf("%.2f in (%s)", in.Width, in.ColumnLocation))
				row("Dead / live load", fmt.Sprintf("%.2f / %.2f k", in.DeadLoad, in.LiveLoad))
				if in.WidthRestriction != nil {
					row("Width restriction", fmt.Sprintf("%.3f ft", *in.WidthRestriction))
				}
			}
			row("f'c / fy", fmt.Sprintf("%.0f / %.0f psi", in.Fc, in.Grade*1000))
			row("Allowable soil pressure", fmt.Sprintf("%.0f psf", in.AllowableSoilPressure))
			row("Bottom of footing", fmt.Sprintf("%.2f ft", in.BottomOfFooting))
		}

		if s.Err != nil || s.Design == nil {
			heading("Design failed")
			pdf.SetFont("Helvetica", "", 10)
			msg := "no design produced"
			if s.Err != nil {
				msg = s.Err.Error()
			}
			pdf.MultiCell(0, 6, tr(msg), "", "L", false)
			continue
		}

		d := s.Design
		heading("Result")
		if d.Kind == footing.Wall {
			row("Width", fmt.Sprintf("%s (%.3f ft)", FormatFeetInches(d.Width), d.Width))
		} else {
			row("Length x width", fmt.Sprintf("%s x %s", FormatFeetInches(d.Length), FormatFeetInches(d.Width)))
		}
		row("Depth", fmt.Sprintf("%s (d = %.2f in)", FormatFeetInches(d.Depth), d.EffectiveDepth))
		for i, as := range d.SteelAreas {
			row(steelLabel(d, i), FormatSteel(as))
		}
		row("Net allowable pressure", fmt.Sprintf("%.1f psf", d.NetPressure))
		row("Factored net pressure", fmt.Sprintf("%.1f psf (%s)", d.FactoredPressure, d.Combination.Description))

		heading("Checks")
		for _, c := range d.Checks.Checks {
			status := "OK"
			if !c.Passed {
				status = "NG"
			}
			row(string(c.Kind), fmt.Sprintf("%s / %s  ratio %.3f  %s",
				checkValue(c.Kind, c.Demand), checkValue(c.Kind, c.Capacity), c.Ratio(), status))
		}
	}

	if len(sheets) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 10, "No footings")
	}
	return pdf.Output(w)
}
