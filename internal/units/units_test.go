package units

import (
	"math"
	"testing"
)

func TestRoundUp(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		grain float64
		want  float64
	}{
		{"between quarters", 11.43, 0.25, 11.5},
		{"never rounds down", 11.26, 0.25, 11.5},
		{"exact multiple", 11.5, 0.5, 11.5},
		{"float noise above multiple", 7.000000000001, 0.5, 7.0},
		{"one inch grain", 2.01, 1.0 / 12, 25.0 / 12},
		{"half foot", 8.82, 0.5, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundUp(tt.x, tt.grain)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RoundUp(%v, %v) = %v, want %v", tt.x, tt.grain, got, tt.want)
			}
		})
	}
}

func TestRoundDown(t *testing.T) {
	if got := RoundDown(7.3, 0.5); math.Abs(got-7.0) > 1e-9 {
		t.Errorf("RoundDown(7.3, 0.5) = %v, want 7.0", got)
	}
	if got := RoundDown(6.9999999999, 0.5); math.Abs(got-7.0) > 1e-9 {
		t.Errorf("RoundDown(6.9999999999, 0.5) = %v, want 7.0", got)
	}
}

func TestIsMultiple(t *testing.T) {
	if !IsMultiple(11.5, 0.5) {
		t.Error("11.5 should be a multiple of 0.5")
	}
	if !IsMultiple(25.0/12, 1.0/12) {
		t.Error("25 in should be a multiple of 1 in")
	}
	if IsMultiple(11.43, 0.25) {
		t.Error("11.43 should not be a multiple of 0.25")
	}
	if IsMultiple(1, 0) {
		t.Error("zero grain has no multiples")
	}
}

func TestConversions(t *testing.T) {
	if FeetToInches(2.5) != 30 {
		t.Errorf("FeetToInches(2.5) = %v", FeetToInches(2.5))
	}
	if InchesToFeet(18) != 1.5 {
		t.Errorf("InchesToFeet(18) = %v", InchesToFeet(18))
	}
	if KipsToPounds(175) != 175000 {
		t.Errorf("KipsToPounds(175) = %v", KipsToPounds(175))
	}
	if PoundsToKips(490000) != 490 {
		t.Errorf("PoundsToKips(490000) = %v", PoundsToKips(490000))
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(9.0, 9.0000000001) {
		t.Error("expected values to be nearly equal")
	}
	if NearlyEqual(11.5, 7.0) {
		t.Error("expected values to differ")
	}
}
