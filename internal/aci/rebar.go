package aci

import "math"

// Bar is a standard deformed reinforcing bar (ASTM A615, inch-pound sizes)
type Bar struct {
	Number   int
	Diameter float64 // in
	Area     float64 // in²
}

// Bars lists the sizes used in footings, smallest first
var Bars = []Bar{
	{3, 0.375, 0.11},
	{4, 0.500, 0.20},
	{5, 0.625, 0.31},
	{6, 0.750, 0.44},
	{7, 0.875, 0.60},
	{8, 1.000, 0.79},
	{9, 1.128, 1.00},
	{10, 1.270, 1.27},
	{11, 1.410, 1.56},
}

// MaxBarSpacing returns the largest center-to-center spacing of flexural
// bars in a slab of total depth h (in): the lesser of 3h and 18 in
func MaxBarSpacing(h float64) float64 {
	return math.Min(3*h, 18)
}

// MinBarSpacing returns the smallest center-to-center spacing of a bar: one
// diameter plus a clear distance of the larger of 1 in and the diameter
func MinBarSpacing(b Bar) float64 {
	return b.Diameter + math.Max(1, b.Diameter)
}

// BarLayout is a set of equal bars spread across a strip
type BarLayout struct {
	Bar      Bar
	Count    int     // 0 for per-foot layouts
	Spacing  float64 // in, center to center
	Provided float64 // in², across the strip or per ft
}

// LayoutBars returns the bar arrangements that provide at least as (in²)
// across a strip of width b (in) in a footing of total depth h (in)
func LayoutBars(as, b, h float64) []BarLayout {
	if as <= 0 || b <= 2*ClearCover {
		return nil
	}
	run := b - 2*ClearCover

	var layouts []BarLayout
	for _, bar := range Bars[1:] {
		count := max(int(math.Ceil(as/bar.Area-1e-9)), 2)
		if spacing := run / float64(count-1); spacing > MaxBarSpacing(h) {
			count = int(math.Ceil(run/MaxBarSpacing(h)-1e-9)) + 1
		}
		spacing := run / float64(count-1)
		if spacing < MinBarSpacing(bar) {
			continue
		}
		layouts = append(layouts, BarLayout{
			Bar:      bar,
			Count:    count,
			Spacing:  spacing,
			Provided: float64(count) * bar.Area,
		})
	}
	return layouts
}

// SpaceBars returns per-foot arrangements providing at least as (in²/ft) in
// a slab of total depth h (in). Spacings are rounded down to half inches.
func SpaceBars(as, h float64) []BarLayout {
	if as <= 0 {
		return nil
	}
	var layouts []BarLayout
	for _, bar := range Bars[1:] {
		spacing := math.Min(bar.Area*12/as, MaxBarSpacing(h))
		spacing = math.Floor(spacing*2+1e-9) / 2
		if spacing < MinBarSpacing(bar) {
			continue
		}
		layouts = append(layouts, BarLayout{
			Bar:      bar,
			Spacing:  spacing,
			Provided: bar.Area * 12 / spacing,
		})
	}
	return layouts
}
