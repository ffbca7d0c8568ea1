package capacity

import (
	"errors"
	"math"
	"testing"
)

// Column footing 11.5 ft x 7.0 ft under a 490 kip factored load
const (
	scenarioQu = 490000 / 80.5 // psf
	scenarioL  = 11.5
	scenarioB  = 7.0
	column     = 18.0
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.4f, want %.4f (±%.4f)", name, got, want, tol)
	}
}

func TestEffectivePressure(t *testing.T) {
	tests := []struct {
		name   string
		depth  float64
		bottom float64
		want   float64
	}{
		{"25 in footing 4 ft down", 25.0 / 12, 4, 4495.833},
		{"footing reaching the surface", 4, 4, 4400},
		{"footing deeper than bottom", 5, 4, 4250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePressure(5000, tt.depth, tt.bottom, 150, 100)
			approx(t, "qe", got, tt.want, 1e-3)
		})
	}
}

func TestRequiredBearingArea(t *testing.T) {
	area, err := RequiredBearingArea(350, 4495.8333333)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, "area", area, 77.8499, 1e-3)

	for _, q := range []float64{0, -10} {
		if _, err := RequiredBearingArea(350, q); !errors.Is(err, ErrNonPositivePressure) {
			t.Errorf("pressure %v: expected ErrNonPositivePressure, got %v", q, err)
		}
	}
}

func TestFactoredPressure(t *testing.T) {
	approx(t, "qu", FactoredPressure(490, 80.5), 6086.957, 1e-3)
	if FactoredPressure(490, 0) != 0 {
		t.Error("zero area should give zero pressure")
	}
}

func TestOneWayShear(t *testing.T) {
	tests := []struct {
		name       string
		d          float64
		wantDemand float64
		wantCap    float64
		pass       bool
	}{
		{"25 in footing passes", 20.5, 140253.62, 141476.74, true},
		{"24 in footing fails", 19.5, 143804.35, 134575.43, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vu := OneWayShearDemand(scenarioQu, scenarioL, scenarioB, column, tt.d)
			phiVc := OneWayShearCapacity(tt.d, scenarioB*12, 3000, 1.0)
			approx(t, "Vu", vu, tt.wantDemand, 0.5)
			approx(t, "φVc", phiVc, tt.wantCap, 0.5)
			if c := NewCheck(OneWayShearL, vu, phiVc); c.Passed != tt.pass {
				t.Errorf("Passed = %v, want %v", c.Passed, tt.pass)
			}
		})
	}
}

func TestOneWayShearDemandBeyondFooting(t *testing.T) {
	// critical section falls outside a very deep, narrow footing
	if vu := OneWayShearDemand(5000, 3, 3, 18, 20); vu != 0 {
		t.Errorf("Vu = %v, want 0", vu)
	}
}

func TestOneWayShearCapacityInvalidDepth(t *testing.T) {
	if got := OneWayShearCapacity(-2, 12, 3000, 1); got != 0 {
		t.Errorf("capacity with negative depth = %v, want 0", got)
	}
}

func TestPunchingPerimeter(t *testing.T) {
	tests := []struct {
		location string
		wantB0   float64
		wantArea float64
	}{
		{"interior", 4 * 38.5, 38.5 * 38.5},
		{"edge", 2*28.25 + 38.5, 28.25 * 38.5},
		{"corner", 2 * 28.25, 28.25 * 28.25},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			b0, area, err := PunchingPerimeter(column, 20.5, tt.location)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			approx(t, "b0", b0, tt.wantB0, 1e-9)
			approx(t, "area", area, tt.wantArea, 1e-9)
		})
	}

	if _, _, err := PunchingPerimeter(column, 20.5, "middle"); err == nil {
		t.Error("expected error for unknown location")
	}
}

func TestPunchingShear(t *testing.T) {
	b0, area, _ := PunchingPerimeter(column, 20.5, "interior")
	vu := PunchingShearDemand(scenarioQu, scenarioL*scenarioB, area)
	phiVc, err := PunchingShearCapacity(20.5, b0, 3000, 1.0, "interior")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, "Vu", vu, 427344.50, 0.5)
	approx(t, "φVc", phiVc, 518748.03, 0.5)

	// location reduces capacity through αs when d/b0 is small
	interior, _ := PunchingShearCapacity(10, 200, 3000, 1.0, "interior")
	corner, _ := PunchingShearCapacity(10, 200, 3000, 1.0, "corner")
	if corner >= interior {
		t.Errorf("corner capacity %.0f should be below interior %.0f", corner, interior)
	}

	if _, err := PunchingShearCapacity(20, 100, 3000, 1.0, "roof"); err == nil {
		t.Error("expected error for unknown location")
	}
}

func TestPunchingShearDemandInsidePerimeter(t *testing.T) {
	if vu := PunchingShearDemand(5000, 4, 40*40); vu != 0 {
		t.Errorf("Vu = %v, want 0 when the perimeter encloses the footing", vu)
	}
}

func TestShearCapacityDispatch(t *testing.T) {
	oneWay, err := ShearCapacity(20.5, 84, 3000, 1.0, Beam, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, "one-way", oneWay, 141476.74, 0.5)

	twoWay, err := ShearCapacity(20.5, 154, 3000, 1.0, TwoWay, "interior")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx(t, "two-way", twoWay, 518748.03, 0.5)
}

func TestFlexuralSteelArea(t *testing.T) {
	tests := []struct {
		name    string
		mu      float64
		b       float64
		want    float64
		minimum bool
	}{
		// bars along the 11.5 ft length, spread over the 7 ft width
		{"length direction", 532.6087, 84, 6.0212, false},
		// bars along the 7 ft width, minimum steel governs
		{"width direction", 264.6875, 138, 6.21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FlexuralSteelArea(tt.mu, 20.5, tt.b, 25, 60000, 3000)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.IsAdequate {
				t.Fatalf("expected adequate section: %s", res.Message)
			}
			approx(t, "As", res.AsRequired, tt.want, 1e-3)
			if res.AsRequired < res.AsMin-1e-9 {
				t.Errorf("As %.3f below minimum %.3f", res.AsRequired, res.AsMin)
			}
			if res.AsRequired < res.AsDemand-1e-9 {
				t.Errorf("As %.3f below demand %.3f", res.AsRequired, res.AsDemand)
			}
			if gotMin := res.AsDemand < res.AsMin; gotMin != tt.minimum {
				t.Errorf("minimum governs = %v, want %v", gotMin, tt.minimum)
			}
		})
	}
}

func TestFlexuralSteelAreaInadequate(t *testing.T) {
	res, err := FlexuralSteelArea(5000, 8, 12, 12, 60000, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsAdequate {
		t.Error("expected inadequate section for a huge moment on a thin slab")
	}
}

func TestFlexuralSteelAreaInvalid(t *testing.T) {
	if _, err := FlexuralSteelArea(10, 0, 12, 12, 60000, 3000); err == nil {
		t.Error("expected error for zero depth")
	}
	if _, err := FlexuralSteelArea(10, 10, 12, 12, 0, 3000); err == nil {
		t.Error("expected error for zero fy")
	}
}

func TestCheckResult(t *testing.T) {
	var r CheckResult
	r.Add(NewCheck(OneWayShearL, 140000, 141000))
	r.Add(NewCheck(PunchingShear, 427000, 518000))
	if !r.Passed() {
		t.Fatal("expected all checks to pass")
	}
	gov, ok := r.Governing()
	if !ok || gov.Kind != OneWayShearL {
		t.Errorf("governing = %v, want %s", gov.Kind, OneWayShearL)
	}

	r.Add(NewCheck(Flexure, 1, 0))
	if r.Passed() {
		t.Error("zero capacity against positive demand should fail")
	}
	if failed := r.Failed(); len(failed) != 1 || failed[0] != Flexure {
		t.Errorf("Failed() = %v", failed)
	}
	if _, ok := r.Find(PunchingShear); !ok {
		t.Error("Find should locate the punching check")
	}
	if _, ok := (CheckResult{}).Governing(); ok {
		t.Error("empty result has no governing check")
	}
}

func TestMaxMomentCapacity(t *testing.T) {
	phiMn := MaxMomentCapacity(20.5, 84, 60000, 3000)
	if phiMn < 532.6087 {
		t.Errorf("φMn,max = %.1f should exceed the 532.6 ft-kip demand", phiMn)
	}
	if MaxMomentCapacity(0, 84, 60000, 3000) != 0 {
		t.Error("zero depth should give zero capacity")
	}
}
