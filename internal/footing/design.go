package footing

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// TrialGeometry is the working geometry of one sizing attempt
type TrialGeometry struct {
	Length         float64 // ft, 1 ft strip for walls
	Width          float64 // ft
	Depth          float64 // ft, total depth h
	EffectiveDepth float64 // in, d
}

// Area returns the plan area (ft²)
func (g TrialGeometry) Area() float64 {
	return g.Length * g.Width
}

// Trial records the checks evaluated at one trial depth
type Trial struct {
	Geometry TrialGeometry
	Result   capacity.CheckResult
}

// FootingDesign is the finalized result of a sizing run
type FootingDesign struct {
	ID   string
	Kind Kind

	// Geometry
	Length         float64 // ft, 1 ft strip for walls
	Width          float64 // ft
	Depth          float64 // ft
	EffectiveDepth float64 // in

	// Reinforcement (in², walls per ft of wall).
	// Rectangular columns: [length direction, width direction].
	SteelAreas []float64
	Flexure    []*capacity.FlexureResult

	// Bearing
	RequiredArea     float64 // ft², before rounding
	NetPressure      float64 // psf available for superimposed load
	FactoredLoad     float64 // kips or kips/ft
	Combination      aci.LoadCombination
	FactoredPressure float64 // psf

	// Final checks and search history
	Checks     capacity.CheckResult
	Iterations int
	Trials     []Trial
}

// IsSquare reports whether a column footing came out square
func (d *FootingDesign) IsSquare() bool {
	return d.Kind == Column && units.NearlyEqual(d.Length, d.Width)
}

// Geometry returns the final geometry as a trial value
func (d *FootingDesign) Geometry() TrialGeometry {
	return TrialGeometry{
		Length:         d.Length,
		Width:          d.Width,
		Depth:          d.Depth,
		EffectiveDepth: d.EffectiveDepth,
	}
}

func (d *FootingDesign) String() string {
	if d.Kind == Wall {
		return fmt.Sprintf("%s: wall footing %.2f ft wide, %.2f ft deep, As = %.2f in²/ft",
			d.ID, d.Width, d.Depth, d.SteelAreas[0])
	}
	if len(d.SteelAreas) == 1 {
		return fmt.Sprintf("%s: column footing %.2f x %.2f ft, %.2f ft deep, As = %.2f in² each way",
			d.ID, d.Length, d.Width, d.Depth, d.SteelAreas[0])
	}
	return fmt.Sprintf("%s: column footing %.2f x %.2f ft, %.2f ft deep, As = %.2f in² (length), %.2f in² (width)",
		d.ID, d.Length, d.Width, d.Depth, d.SteelAreas[0], d.SteelAreas[1])
}

// SizingError reports that no compliant geometry exists within the search bounds
type SizingError struct {
	ID     string
	Check  capacity.CheckKind
	Reason string
	Trial  TrialGeometry
	Err    error
}

func (e *SizingError) Error() string {
	msg := fmt.Sprintf("%s check cannot be satisfied: %s", e.Check, e.Reason)
	if e.ID != "" {
		msg = fmt.Sprintf("footing %s: %s", e.ID, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SizingError) Unwrap() error {
	return e.Err
}
