package footing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// columnVariant sizes a footing under a square column. The plan has two
// degrees of freedom and the slab acts two ways.
type columnVariant struct {
	in  DesignInput
	mat MaterialParameters
}

func (v *columnVariant) Kind() Kind { return Column }

func (v *columnVariant) Cover() float64 { return aci.ColumnFootingCover }

func (v *columnVariant) columnFt() float64 {
	return units.InchesToFeet(v.in.Width)
}

// Plan returns a square footing unless the rounded square would exceed the
// width restriction. A restricted footing keeps its width at the restriction
// (rounded down so it still fits) and grows in length to recover the area.
func (v *columnVariant) Plan(area float64) (TrialGeometry, error) {
	p := v.in.Precision
	side := units.RoundUp(math.Sqrt(area), p)
	g := TrialGeometry{Length: side, Width: side}

	if v.in.Restricted() && side > *v.in.WidthRestriction+units.Epsilon {
		restriction := *v.in.WidthRestriction
		width := units.RoundDown(restriction, p)
		if width <= 0 {
			return g, fmt.Errorf("width restriction %.3f ft is finer than the %.3f ft precision", restriction, p)
		}
		if width < v.columnFt() {
			return TrialGeometry{Width: width}, fmt.Errorf("width restriction %.2f ft is narrower than the %.0f in column", width, v.in.Width)
		}
		g = TrialGeometry{Length: units.RoundUp(area/width, p), Width: width}
	}

	if g.Length > aci.MaxPlanDimension {
		return g, fmt.Errorf("required length %.1f ft exceeds the %.0f ft limit", g.Length, aci.MaxPlanDimension)
	}
	return g, nil
}

// Check evaluates one-way shear across both directions, two-way shear around
// the column and flexure at both column faces
func (v *columnVariant) Check(g TrialGeometry, qu float64) capacity.CheckResult {
	var r capacity.CheckResult
	d := g.EffectiveDepth
	c := v.in.Width
	m := v.mat

	// Section parallel to the width, cutting across the length
	r.Add(capacity.NewCheck(capacity.OneWayShearL,
		capacity.OneWayShearDemand(qu, g.Length, g.Width, c, d),
		v.shearCapacity(d, units.FeetToInches(g.Width), capacity.Beam)))
	r.Add(capacity.NewCheck(capacity.OneWayShearW,
		capacity.OneWayShearDemand(qu, g.Width, g.Length, c, d),
		v.shearCapacity(d, units.FeetToInches(g.Length), capacity.Beam)))

	// An unknown location leaves no punching capacity and fails the check.
	b0, enclosed, err := capacity.PunchingPerimeter(c, d, v.in.ColumnLocation)
	var phiVc float64
	if err == nil {
		phiVc = v.shearCapacity(d, b0, capacity.TwoWay)
	}
	r.Add(capacity.NewCheck(capacity.PunchingShear,
		capacity.PunchingShearDemand(qu, g.Area(), enclosed), phiVc))

	muL, muW := v.moments(g, qu)
	r.Add(flexureCheck(muL, d, g.Width, m))
	r.Add(flexureCheck(muW, d, g.Length, m))
	return r
}

// shearCapacity returns φVc (lb), zero when the column location is unknown
func (v *columnVariant) shearCapacity(d, width float64, kind capacity.ShearKind) float64 {
	phiVc, err := capacity.ShearCapacity(d, width, v.mat.Fc, v.mat.Lambda, kind, v.in.ColumnLocation)
	if err != nil {
		return 0
	}
	return phiVc
}

// moments returns the face moments for bars running along the length and
// along the width
func (v *columnVariant) moments(g TrialGeometry, qu float64) (muL, muW float64) {
	c := v.columnFt()
	muL = faceMoment(qu, g.Width, g.Length/2-c/2)
	muW = faceMoment(qu, g.Length, g.Width/2-c/2)
	return muL, muW
}

// Steel designs both directions. A square footing reports one area since
// both directions carry the same moment.
func (v *columnVariant) Steel(g TrialGeometry, qu float64) ([]*capacity.FlexureResult, error) {
	muL, muW := v.moments(g, qu)

	long, err := designStrip(muL, g, g.Width, v.mat)
	if err != nil {
		return nil, fmt.Errorf("length direction: %w", err)
	}
	if units.NearlyEqual(g.Length, g.Width) {
		return []*capacity.FlexureResult{long}, nil
	}

	short, err := designStrip(muW, g, g.Length, v.mat)
	if err != nil {
		return nil, fmt.Errorf("width direction: %w", err)
	}
	return []*capacity.FlexureResult{long, short}, nil
}
