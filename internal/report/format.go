package report

import (
	"fmt"
	"math"
	"strings"
)

// FormatFeetInches renders a length in feet as feet and inches, rounded to
// the nearest inch: 11.5 -> 11'-6", 2.0833 -> 2'-1", 0.75 -> 0'-9".
func FormatFeetInches(ft float64) string {
	sign := ""
	if ft < 0 {
		sign = "-"
		ft = -ft
	}
	total := int(math.Round(ft * 12))
	return fmt.Sprintf("%s%d'-%d\"", sign, total/12, total%12)
}

// FormatSteel renders a steel area in square inches
func FormatSteel(as float64) string {
	return fmt.Sprintf("%.2f in²", as)
}

// FormatSteelAreas renders one or two steel areas; two areas are labelled
// with the direction the bars run
func FormatSteelAreas(areas []float64) string {
	switch len(areas) {
	case 0:
		return ""
	case 1:
		return FormatSteel(areas[0])
	}
	parts := []string{
		FormatSteel(areas[0]) + " (long)",
		FormatSteel(areas[1]) + " (short)",
	}
	return strings.Join(parts, ", ")
}
