package units

import "math"

// Conversion factors for US customary units
const (
	InchesPerFoot  = 12.0
	PoundsPerKip   = 1000.0
	SquareInPerFt2 = 144.0

	// Tolerance used when comparing rounded dimensions
	Epsilon = 1e-9
)

// FeetToInches converts a length in feet to inches
func FeetToInches(ft float64) float64 {
	return ft * InchesPerFoot
}

// InchesToFeet converts a length in inches to feet
func InchesToFeet(in float64) float64 {
	return in / InchesPerFoot
}

// KipsToPounds converts a force in kips to pounds
func KipsToPounds(k float64) float64 {
	return k * PoundsPerKip
}

// PoundsToKips converts a force in pounds to kips
func PoundsToKips(lb float64) float64 {
	return lb / PoundsPerKip
}

// RoundUp returns the smallest multiple of grain that is >= x.
// Values already within floating tolerance of a multiple are kept on it.
func RoundUp(x, grain float64) float64 {
	if grain <= 0 {
		return x
	}
	n := math.Ceil(x/grain - 1e-7)
	return n * grain
}

// RoundDown returns the largest multiple of grain that is <= x.
func RoundDown(x, grain float64) float64 {
	if grain <= 0 {
		return x
	}
	n := math.Floor(x/grain + 1e-7)
	return n * grain
}

// IsMultiple reports whether x is an integer multiple of grain
func IsMultiple(x, grain float64) bool {
	if grain <= 0 {
		return false
	}
	q := x / grain
	return math.Abs(q-math.Round(q)) < 1e-6
}

// NearlyEqual compares two dimensions using a relative tolerance
func NearlyEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff < 1e-6 {
		return true
	}
	return diff <= 1e-6*math.Max(math.Abs(a), math.Abs(b))
}
