package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/footing"
	"github.com/alexiusacademia/gofooting/internal/report"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// PlanData holds what the drawings need from a finished design
type PlanData struct {
	ID   string
	Kind footing.Kind

	// Footing (ft)
	Length float64
	Width  float64
	Depth  float64

	EffectiveDepth float64 // in
	ColumnWidth    float64 // in, column side or wall thickness
	Location       string  // interior, edge or corner
	WallType       string

	SteelAreas []float64 // in²
}

// NewPlanData collects the drawing data of a design
func NewPlanData(in footing.DesignInput, d *footing.FootingDesign) PlanData {
	g := d.Geometry()
	return PlanData{
		ID:             d.ID,
		Kind:           d.Kind,
		Length:         g.Length,
		Width:          g.Width,
		Depth:          g.Depth,
		EffectiveDepth: g.EffectiveDepth,
		ColumnWidth:    in.Width,
		Location:       in.ColumnLocation,
		WallType:       in.WallType,
		SteelAreas:     d.SteelAreas,
	}
}

// rect is an axis-aligned rectangle in plan, ft from the footing corner
type rect struct {
	x0, y0, x1, y1 float64
}

// columnRect places the column on the footing. Interior columns sit at the
// center, edge columns on the x = 0 edge and corner columns at the origin.
func (p PlanData) columnRect() rect {
	c := units.InchesToFeet(p.ColumnWidth)
	switch p.Location {
	case aci.Edge:
		y := (p.Width - c) / 2
		return rect{0, y, c, y + c}
	case aci.Corner:
		return rect{0, 0, c, c}
	}
	x, y := (p.Length-c)/2, (p.Width-c)/2
	return rect{x, y, x + c, y + c}
}

// punchingRect is the critical perimeter at d/2 from the column faces,
// clipped to the footing on the open sides
func (p PlanData) punchingRect() rect {
	h := units.InchesToFeet(p.EffectiveDepth) / 2
	c := p.columnRect()
	r := rect{c.x0 - h, c.y0 - h, c.x1 + h, c.y1 + h}
	r.x0 = math.Max(r.x0, 0)
	r.y0 = math.Max(r.y0, 0)
	r.x1 = math.Min(r.x1, p.Length)
	r.y1 = math.Min(r.y1, p.Width)
	return r
}

// DrawPlan creates an ASCII plan of a column footing with the column and its
// punching shear perimeter. Wall footings are drawn as a cross section.
func DrawPlan(p PlanData) string {
	if p.Kind == footing.Wall {
		return DrawSection(p)
	}

	cols := 40
	rows := int(math.Round(float64(cols) * p.Width / p.Length / 2))
	rows = min(max(rows, 5), 30)
	sx := float64(cols) / p.Length
	sy := float64(rows) / p.Width

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	cell := func(x, y float64) (int, int) {
		i := min(max(int(y*sy), 0), rows-1)
		j := min(max(int(x*sx), 0), cols-1)
		return i, j
	}

	pr := p.punchingRect()
	i0, j0 := cell(pr.x0, pr.y0)
	i1, j1 := cell(pr.x1, pr.y1)
	for j := j0; j <= j1; j++ {
		grid[i0][j], grid[i1][j] = '·', '·'
	}
	for i := i0; i <= i1; i++ {
		grid[i][j0], grid[i][j1] = '·', '·'
	}

	cr := p.columnRect()
	i0, j0 = cell(cr.x0, cr.y0)
	i1, j1 = cell(cr.x1-units.Epsilon, cr.y1-units.Epsilon)
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			grid[i][j] = '█'
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FOOTING PLAN\n")
	sb.WriteString("  ────────────\n\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for i := rows - 1; i >= 0; i-- {
		line := fmt.Sprintf("  │%s│", string(grid[i]))
		if i == rows/2 {
			line += fmt.Sprintf("  B = %s", report.FormatFeetInches(p.Width))
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	label := fmt.Sprintf("L = %s", report.FormatFeetInches(p.Length))
	sb.WriteString(fmt.Sprintf("  %s%s\n", strings.Repeat(" ", max((cols+2-len(label))/2, 0)), label))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  ███ = %.0f in column (%s)\n", p.ColumnWidth, p.Location))
	sb.WriteString(fmt.Sprintf("  ··· = Punching shear perimeter at d/2 = %.2f in\n", p.EffectiveDepth/2))
	return sb.String()
}

// DrawSection creates an ASCII cross section through the footing showing
// the supported member, the depth and the bottom reinforcement
func DrawSection(p PlanData) string {
	var sb strings.Builder

	widthChars := 40
	stub := max(int(math.Round(units.InchesToFeet(p.ColumnWidth)/p.Width*float64(widthChars))), 2)
	stub = min(stub, widthChars-2)
	left := (widthChars - stub) / 2
	if p.Kind == footing.Column && p.Location != aci.Interior && p.Location != "" {
		left = 0
	}
	heightChars := min(max(int(math.Round(p.Depth*4)), 3), 12)

	member := "COLUMN"
	if p.Kind == footing.Wall {
		member = strings.ToUpper(p.WallType) + " WALL"
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  FOOTING SECTION (%s)\n", member))
	sb.WriteString("  ───────────────\n\n")

	for i := 0; i < 3; i++ {
		sb.WriteString(fmt.Sprintf("   %s│%s│\n", strings.Repeat(" ", left), strings.Repeat("▒", stub)))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┴%s┴%s┐\n", strings.Repeat("─", left), strings.Repeat("─", stub), strings.Repeat("─", widthChars-left-stub)))
	for i := 1; i < heightChars; i++ {
		fill := strings.Repeat(" ", widthChars+2)
		if i == heightChars-1 {
			fill = " " + strings.Repeat("●", widthChars) + " "
		}
		line := fmt.Sprintf("  │%s│", fill)
		if i == 1 {
			line += fmt.Sprintf("  h = %s", report.FormatFeetInches(p.Depth))
		}
		if i == heightChars-1 {
			line += fmt.Sprintf("  d = %.2f in", p.EffectiveDepth)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars+2)))

	span := p.Width
	name := "B"
	if p.Kind == footing.Column {
		span, name = p.Length, "L"
	}
	label := fmt.Sprintf("%s = %s", name, report.FormatFeetInches(span))
	sb.WriteString(fmt.Sprintf("  %s%s\n", strings.Repeat(" ", max((widthChars+4-len(label))/2, 0)), label))

	sb.WriteString("\n")
	for i, as := range p.SteelAreas {
		sb.WriteString(fmt.Sprintf("  ●●● = %s\n", steelNote(p, i, as)))
	}
	return sb.String()
}

func steelNote(p PlanData, i int, as float64) string {
	switch {
	case p.Kind == footing.Wall:
		return fmt.Sprintf("As = %.2f in² per ft of wall", as)
	case len(p.SteelAreas) == 1:
		return fmt.Sprintf("As = %.2f in² each way", as)
	case i == 0:
		return fmt.Sprintf("As = %.2f in² along the length", as)
	}
	return fmt.Sprintf("As = %.2f in² along the width", as)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
