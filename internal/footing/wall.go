package footing

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// stripLength is the unit length of wall carried by one design strip
const stripLength = 1.0 // ft

// wallVariant sizes a continuous footing under a wall, one foot at a time
type wallVariant struct {
	in  DesignInput
	mat MaterialParameters
}

func (v *wallVariant) Kind() Kind { return Wall }

func (v *wallVariant) Cover() float64 { return aci.WallFootingCover }

// Plan divides the required area by the unit strip length. The footing is
// never narrower than the wall it carries.
func (v *wallVariant) Plan(area float64) (TrialGeometry, error) {
	p := v.in.Precision
	width := units.RoundUp(area/stripLength, p)
	if wall := units.RoundUp(units.InchesToFeet(v.in.Width), p); width < wall {
		width = wall
	}
	g := TrialGeometry{Length: stripLength, Width: width}
	if width > aci.MaxPlanDimension {
		return g, fmt.Errorf("required width %.1f ft exceeds the %.0f ft limit", width, aci.MaxPlanDimension)
	}
	return g, nil
}

// Check evaluates one-way shear at d from the wall face and flexure at the
// critical section. Walls have no punching shear.
func (v *wallVariant) Check(g TrialGeometry, qu float64) capacity.CheckResult {
	var r capacity.CheckResult
	d := g.EffectiveDepth
	m := v.mat

	r.Add(capacity.NewCheck(capacity.OneWayShear,
		capacity.OneWayShearDemand(qu, g.Width, g.Length, v.in.Width, d),
		v.shearCapacity(d, units.FeetToInches(g.Length))))
	r.Add(flexureCheck(v.moment(g, qu), d, g.Length, m))
	return r
}

// shearCapacity returns the one-way φVc (lb) of a strip b inches wide
func (v *wallVariant) shearCapacity(d, b float64) float64 {
	phiVc, _ := capacity.ShearCapacity(d, b, v.mat.Fc, v.mat.Lambda, capacity.Beam, "")
	return phiVc
}

// moment returns the factored moment per foot of wall. The critical section
// is at the face of a concrete wall and halfway between the centerline and
// the face of a masonry wall (ACI 318-19 Table 13.2.7.1).
func (v *wallVariant) moment(g TrialGeometry, qu float64) float64 {
	t := units.InchesToFeet(v.in.Width)
	arm := g.Width/2 - t/2
	if v.in.WallType == MasonryWall {
		arm = g.Width/2 - t/4
	}
	return faceMoment(qu, g.Length, arm)
}

// Steel designs the transverse reinforcement per foot of wall
func (v *wallVariant) Steel(g TrialGeometry, qu float64) ([]*capacity.FlexureResult, error) {
	res, err := designStrip(v.moment(g, qu), g, g.Length, v.mat)
	if err != nil {
		return nil, err
	}
	return []*capacity.FlexureResult{res}, nil
}
