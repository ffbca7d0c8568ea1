package footing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofooting/internal/aci"
	"github.com/alexiusacademia/gofooting/internal/capacity"
	"github.com/alexiusacademia/gofooting/internal/units"
)

// maxIterations bounds the outer loop between bearing area and depth
const maxIterations = 50

// depthGrain is the coarsest step of the depth search
const depthGrain = 1.0 / 12 // ft

// Size validates the input, selects the footing variant and returns the
// smallest rounded geometry and its reinforcement
func Size(in DesignInput) (*FootingDesign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	mat, err := NewMaterialParameters(in)
	if err != nil {
		return nil, NewValidationError("conc_type", err.Error())
	}
	v, err := VariantFor(in, mat)
	if err != nil {
		return nil, err
	}
	return newSizer(in, mat, v).run()
}

// DepthStep returns the grain of the depth search for a rounding precision:
// the precision itself, but never coarser than one inch
func DepthStep(precision float64) float64 {
	return math.Min(precision, depthGrain)
}

// MinimumDepth returns the shallowest total depth (ft) tried for a variant
func MinimumDepth(v Variant, precision float64) float64 {
	return units.RoundUp(units.InchesToFeet(aci.MinEffectiveDepth+v.Cover()), DepthStep(precision))
}

type sizer struct {
	in      DesignInput
	mat     MaterialParameters
	variant Variant

	service     float64
	factored    float64
	combination aci.LoadCombination

	step     float64
	minSteps int
	maxSteps int
}

func newSizer(in DesignInput, mat MaterialParameters, v Variant) *sizer {
	s := &sizer{in: in, mat: mat, variant: v}
	loads := in.Loads()
	s.service = loads.Service()
	s.factored, s.combination = aci.CalculateGoverningLoad(loads, aci.GravityCombinations)
	s.step = DepthStep(in.Precision)
	s.minSteps = int(math.Round(MinimumDepth(v, in.Precision) / s.step))
	s.maxSteps = int(math.Floor(aci.MaxDepth/s.step + 1e-7))
	return s
}

// depthAt returns the total depth of search step n, an exact multiple of the step
func (s *sizer) depthAt(n int) float64 {
	return float64(n) * s.step
}

func (s *sizer) fail(check capacity.CheckKind, g TrialGeometry, reason string, err error) error {
	return &SizingError{ID: s.in.ID, Check: check, Reason: reason, Trial: g, Err: err}
}

// run alternates between sizing the plan for an assumed depth and searching
// the minimum depth for that plan until the two agree
func (s *sizer) run() (*FootingDesign, error) {
	assumed := s.minSteps

	for iter := 1; iter <= maxIterations; iter++ {
		h := s.depthAt(assumed)
		qe := capacity.EffectivePressure(s.in.AllowableSoilPressure, h, s.in.BottomOfFooting,
			s.mat.ConcreteUnitWeight, s.mat.EarthUnitWeight)
		area, err := capacity.RequiredBearingArea(s.service, qe)
		if err != nil {
			return nil, s.fail(capacity.Bearing, TrialGeometry{Depth: h}, "no soil pressure left for the load", err)
		}

		plan, err := s.variant.Plan(area)
		if err != nil {
			plan.Depth = h
			return nil, s.fail(capacity.Bearing, plan, "plan cannot provide the required area", err)
		}

		qu := capacity.FactoredPressure(s.factored, plan.Area())
		found, trials, err := s.searchDepth(plan, qu)
		if err != nil {
			return nil, err
		}

		// A deeper footing leaves less net soil pressure and a larger plan,
		// so the depth only grows between iterations.
		if found <= assumed {
			return s.finish(plan, found, area, qe, qu, trials, iter)
		}
		assumed = found
	}

	return nil, s.fail(capacity.Bearing, TrialGeometry{Depth: s.depthAt(assumed)},
		fmt.Sprintf("bearing area and depth did not converge in %d iterations", maxIterations), nil)
}

// searchDepth scans depths from the practical minimum upward and returns the
// first step at which every check passes
func (s *sizer) searchDepth(plan TrialGeometry, qu float64) (int, []Trial, error) {
	var trials []Trial
	var last Trial

	for n := s.minSteps; n <= s.maxSteps; n++ {
		g := plan
		g.Depth = s.depthAt(n)
		g.EffectiveDepth = units.FeetToInches(g.Depth) - s.variant.Cover()

		last = Trial{Geometry: g, Result: s.variant.Check(g, qu)}
		trials = append(trials, last)
		if last.Result.Passed() {
			return n, trials, nil
		}
	}

	check := capacity.OneWayShear
	if gov, ok := last.Result.Governing(); ok {
		check = gov.Kind
	}
	return 0, trials, s.fail(check, last.Geometry,
		fmt.Sprintf("depth exceeds the %.0f ft search limit", aci.MaxDepth), nil)
}

// finish designs the reinforcement of the converged geometry and packages the result
func (s *sizer) finish(plan TrialGeometry, n int, area, qe, qu float64, trials []Trial, iter int) (*FootingDesign, error) {
	g := plan
	g.Depth = s.depthAt(n)
	g.EffectiveDepth = units.FeetToInches(g.Depth) - s.variant.Cover()

	flexure, err := s.variant.Steel(g, qu)
	if err != nil {
		return nil, s.fail(capacity.Flexure, g, "reinforcement cannot be designed", err)
	}
	steel := make([]float64, len(flexure))
	for i, f := range flexure {
		steel[i] = f.AsRequired
	}

	checks := s.variant.Check(g, qu)
	netAtDepth := capacity.EffectivePressure(s.in.AllowableSoilPressure, g.Depth, s.in.BottomOfFooting,
		s.mat.ConcreteUnitWeight, s.mat.EarthUnitWeight)
	bearing := capacity.NewCheck(capacity.Bearing, units.KipsToPounds(s.service)/g.Area(), netAtDepth)
	checks.Checks = append([]capacity.Check{bearing}, checks.Checks...)

	return &FootingDesign{
		ID:               s.in.ID,
		Kind:             s.variant.Kind(),
		Length:           g.Length,
		Width:            g.Width,
		Depth:            g.Depth,
		EffectiveDepth:   g.EffectiveDepth,
		SteelAreas:       steel,
		Flexure:          flexure,
		RequiredArea:     area,
		NetPressure:      qe,
		FactoredLoad:     s.factored,
		Combination:      s.combination,
		FactoredPressure: qu,
		Checks:           checks,
		Iterations:       iter,
		Trials:           trials,
	}, nil
}
