package footing

import (
	"fmt"

	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// Variant carries the sizing rules that differ between column and wall
// footings. The sizer only talks to this interface.
type Variant interface {
	Kind() Kind

	// Cover is the distance from the top of the footing to d (in)
	Cover() float64

	// Plan turns a required bearing area into rounded plan dimensions
	Plan(area float64) (TrialGeometry, error)

	// Check evaluates shear and flexure feasibility of a trial under the
	// factored net pressure qu (psf)
	Check(g TrialGeometry, qu float64) capacity.CheckResult

	// Steel designs the flexural reinforcement of the final geometry
	Steel(g TrialGeometry, qu float64) ([]*capacity.FlexureResult, error)
}

// VariantFor selects the variant of a validated input
func VariantFor(in DesignInput, mat MaterialParameters) (Variant, error) {
	switch in.Kind {
	case Column:
		return &columnVariant{in: in, mat: mat}, nil
	case Wall:
		return &wallVariant{in: in, mat: mat}, nil
	}
	return nil, NewValidationError("ftng_type", fmt.Sprintf("unknown footing type %q", in.Kind))
}

// faceMoment returns the factored moment (ft-kips) of a cantilever strip of
// the given width (ft) projecting arm (ft) beyond the critical section
func faceMoment(qu, widthFt, arm float64) float64 {
	if arm <= 0 {
		return 0
	}
	return units.PoundsToKips(qu * widthFt * arm * arm / 2)
}

// flexureCheck compares the face moment with the tension-controlled capacity
func flexureCheck(mu, d, widthFt float64, mat MaterialParameters) capacity.Check {
	phiMn := capacity.MaxMomentCapacity(d, units.FeetToInches(widthFt), mat.Fy, mat.Fc)
	return capacity.NewCheck(capacity.Flexure, mu, phiMn)
}

// designStrip runs the flexural design of one strip and rejects inadequate sections
func designStrip(mu float64, g TrialGeometry, widthFt float64, mat MaterialParameters) (*capacity.FlexureResult, error) {
	res, err := capacity.FlexuralSteelArea(mu, g.EffectiveDepth, units.FeetToInches(widthFt),
		units.FeetToInches(g.Depth), mat.Fy, mat.Fc)
	if err != nil {
		return nil, err
	}
	if !res.IsAdequate {
		return nil, fmt.Errorf("flexure: %s", res.Message)
	}
	return res, nil
}
