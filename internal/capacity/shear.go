package capacity

import (
	"math"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// ShearKind selects the shear failure mode
type ShearKind int

const (
	Beam ShearKind = iota
	TwoWay
)

// OneWayShearCapacity returns φVc (lb) of a section of width b (in) and
// effective depth d (in).
// ACI 318-19 Section 22.5.5.1: Vc = 2λ√f'c b d
func OneWayShearCapacity(d, b, fc, lambda float64) float64 {
	if d <= 0 || b <= 0 {
		return 0
	}
	return aci.PhiShear * 2 * lambda * math.Sqrt(fc) * b * d
}

// OneWayShearDemand returns Vu (lb) at the critical section located d from the
// face of the supported member. spanFt is the footing dimension perpendicular
// to the section, widthFt the footing dimension along it and supportIn the
// column or wall width.
func OneWayShearDemand(qu, spanFt, widthFt, supportIn, d float64) float64 {
	arm := spanFt/2 - units.InchesToFeet(supportIn)/2 - units.InchesToFeet(d)
	if arm <= 0 {
		return 0
	}
	return qu * widthFt * arm
}

// PunchingPerimeter returns the critical perimeter b0 (in) and the plan area
// it encloses (in²) for a square column of width c (in). The section lies d/2
// from each column face that has footing beyond it; edge columns lose one
// side and corner columns two.
func PunchingPerimeter(c, d float64, location string) (b0, area float64, err error) {
	switch location {
	case aci.Interior:
		return 4 * (c + d), (c + d) * (c + d), nil
	case aci.Edge:
		return 2*(c+d/2) + (c + d), (c + d/2) * (c + d), nil
	case aci.Corner:
		return 2 * (c + d/2), (c + d/2) * (c + d/2), nil
	}
	_, err = aci.Alpha(location)
	return 0, 0, err
}

// PunchingShearCapacity returns φVc (lb) for two-way shear around a square
// column. ACI 318-19 Table 22.6.5.2; with βc = 1 the (2 + 4/β) term is 6 and
// never governs.
func PunchingShearCapacity(d, b0, fc, lambda float64, location string) (float64, error) {
	alpha, err := aci.Alpha(location)
	if err != nil {
		return 0, err
	}
	if d <= 0 || b0 <= 0 {
		return 0, nil
	}
	const betaTerm = 2 + 4/1.0 // square column, βc = 1
	coeff := math.Min(math.Min(4, betaTerm), alpha*d/b0+2)
	return aci.PhiShear * coeff * lambda * math.Sqrt(fc) * b0 * d, nil
}

// PunchingShearDemand returns Vu (lb): the factored pressure acting on the
// footing area outside the critical perimeter
func PunchingShearDemand(qu, planAreaFt2, criticalAreaIn2 float64) float64 {
	outside := planAreaFt2 - criticalAreaIn2/units.SquareInPerFt2
	if outside <= 0 {
		return 0
	}
	return qu * outside
}

// ShearCapacity dispatches to the one-way or two-way capacity. For one-way
// shear width is the section width (in); for two-way shear it is the
// critical perimeter b0 (in).
func ShearCapacity(d, width, fc, lambda float64, kind ShearKind, location string) (float64, error) {
	if kind == TwoWay {
		return PunchingShearCapacity(d, width, fc, lambda, location)
	}
	return OneWayShearCapacity(d, width, fc, lambda), nil
}
