package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gofooting/internal/footing"
	"github.com/alexiusacademia/gofooting/internal/units"
)

var (
	outlineColor  = color.Black
	columnColor   = color.RGBA{R: 100, G: 149, B: 237, A: 200}
	punchingColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	sectionColor  = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

func (r rect) xys() plotter.XYs {
	return plotter.XYs{
		{X: r.x0, Y: r.y0},
		{X: r.x1, Y: r.y0},
		{X: r.x1, Y: r.y1},
		{X: r.x0, Y: r.y1},
		{X: r.x0, Y: r.y0},
	}
}

// ExportPlan exports the footing plan to an image file. The format follows
// the extension (.png, .svg or .pdf); anything else is saved as PNG.
func ExportPlan(p PlanData, filename string) error {
	if p.Kind == footing.Wall {
		return exportWallSection(p, filename)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Footing Plan %s", p.ID)
	pl.X.Label.Text = "Length (ft)"
	pl.Y.Label.Text = "Width (ft)"

	outline, err := plotter.NewLine(rect{0, 0, p.Length, p.Width}.xys())
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = outlineColor
	pl.Add(outline)

	col, err := plotter.NewPolygon(p.columnRect().xys()[:4])
	if err != nil {
		return err
	}
	col.Color = columnColor
	col.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	pl.Add(col)

	punch, err := plotter.NewLine(p.punchingRect().xys())
	if err != nil {
		return err
	}
	punch.LineStyle.Width = vg.Points(1.5)
	punch.LineStyle.Color = punchingColor
	punch.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	pl.Add(punch)

	// One-way shear sections at d from the column faces
	d := units.InchesToFeet(p.EffectiveDepth)
	c := p.columnRect()
	sections := []plotter.XYs{
		{{X: c.x1 + d, Y: 0}, {X: c.x1 + d, Y: p.Width}},
		{{X: 0, Y: c.y1 + d}, {X: p.Length, Y: c.y1 + d}},
	}
	for _, pts := range sections {
		if pts[0].X > p.Length || pts[0].Y > p.Width {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = sectionColor
		l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		pl.Add(l)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: p.Length / 2, Y: -0.06 * p.Width},
			{X: 1.02 * p.Length, Y: p.Width / 2},
			{X: c.x1, Y: c.y1},
		},
		Labels: []string{
			fmt.Sprintf("L = %.2f ft", p.Length),
			fmt.Sprintf("B = %.2f ft", p.Width),
			fmt.Sprintf("%.0f in column, d = %.1f in", p.ColumnWidth, p.EffectiveDepth),
		},
	})
	if err != nil {
		return err
	}
	pl.Add(labels)

	pad := 0.1 * max(p.Length, p.Width)
	pl.X.Min, pl.X.Max = -pad, p.Length+2*pad
	pl.Y.Min, pl.Y.Max = -pad, p.Width+pad

	return save(pl, 8*vg.Inch, 8*vg.Inch*vg.Length(max(p.Width/p.Length, 0.5)), filename)
}

// exportWallSection draws the cross section of a wall footing strip
func exportWallSection(p PlanData, filename string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Wall Footing Section %s", p.ID)
	pl.X.Label.Text = "Width (ft)"
	pl.Y.Label.Text = "Elevation (ft)"

	outline, err := plotter.NewLine(rect{0, 0, p.Width, p.Depth}.xys())
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = outlineColor
	pl.Add(outline)

	t := units.InchesToFeet(p.ColumnWidth)
	x := (p.Width - t) / 2
	wall, err := plotter.NewPolygon(rect{x, p.Depth, x + t, p.Depth + 2*p.Depth}.xys()[:4])
	if err != nil {
		return err
	}
	wall.Color = columnColor
	pl.Add(wall)

	steelY := p.Depth - units.InchesToFeet(p.EffectiveDepth)
	steel, err := plotter.NewLine(plotter.XYs{{X: 0.05 * p.Width, Y: steelY}, {X: 0.95 * p.Width, Y: steelY}})
	if err != nil {
		return err
	}
	steel.LineStyle.Width = vg.Points(2)
	steel.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	pl.Add(steel)

	note := fmt.Sprintf("B = %.2f ft, h = %.2f ft", p.Width, p.Depth)
	if len(p.SteelAreas) > 0 {
		note += fmt.Sprintf(", As = %.2f in²/ft", p.SteelAreas[0])
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0, Y: -0.3 * p.Depth}},
		Labels: []string{note},
	})
	if err != nil {
		return err
	}
	pl.Add(labels)

	pl.Y.Min, pl.Y.Max = -0.5*p.Depth, 3.2*p.Depth
	return save(pl, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(pl *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return pl.Save(width, height, filename)
	default:
		return pl.Save(width, height, filename+".png")
	}
}
