package aci

import (
	"math"
	"testing"
)

func TestBeta1(t *testing.T) {
	tests := []struct {
		fc   float64
		want float64
	}{
		{3000, 0.85},
		{4000, 0.85},
		{5000, 0.80},
		{8000, 0.65},
		{10000, 0.65},
	}

	for _, tt := range tests {
		if got := Beta1(tt.fc); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Beta1(%v) = %v, want %v", tt.fc, got, tt.want)
		}
	}
}

func TestShrinkageRhoMin(t *testing.T) {
	tests := []struct {
		fy   float64
		want float64
	}{
		{40000, 0.0020},
		{60000, 0.0018},
		{75000, 0.00144},
		{100000, 0.0014},
	}

	for _, tt := range tests {
		if got := ShrinkageRhoMin(tt.fy); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ShrinkageRhoMin(%v) = %v, want %v", tt.fy, got, tt.want)
		}
	}
}

func TestLambda(t *testing.T) {
	for typ, want := range map[string]float64{"nw": 1.0, "slw": 0.85, "lw": 0.75} {
		got, err := Lambda(typ)
		if err != nil {
			t.Fatalf("Lambda(%q) returned error: %v", typ, err)
		}
		if got != want {
			t.Errorf("Lambda(%q) = %v, want %v", typ, got, want)
		}
	}
	if _, err := Lambda("foam"); err == nil {
		t.Error("expected error for unknown concrete type")
	}
}

func TestAlpha(t *testing.T) {
	for loc, want := range map[string]float64{"interior": 40, "edge": 30, "corner": 20} {
		got, err := Alpha(loc)
		if err != nil {
			t.Fatalf("Alpha(%q) returned error: %v", loc, err)
		}
		if got != want {
			t.Errorf("Alpha(%q) = %v, want %v", loc, got, want)
		}
	}
	if _, err := Alpha("roof"); err == nil {
		t.Error("expected error for unknown location")
	}
}

func TestCalculateGoverningLoad(t *testing.T) {
	tests := []struct {
		name      string
		loads     Loads
		want      float64
		governing string
	}{
		{"live heavy", Loads{Dead: 175, Live: 175}, 490, "5.3.1b"},
		{"dead only", Loads{Dead: 100}, 140, "5.3.1a"},
		{"small live", Loads{Dead: 100, Live: 10}, 140, "5.3.1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pu, combo := CalculateGoverningLoad(tt.loads, GravityCombinations)
			if math.Abs(pu-tt.want) > 1e-9 {
				t.Errorf("Pu = %v, want %v", pu, tt.want)
			}
			if combo.ID != tt.governing {
				t.Errorf("governing = %s, want %s", combo.ID, tt.governing)
			}
		})
	}
}

func TestServiceLoad(t *testing.T) {
	if got := (Loads{Dead: 175, Live: 175}).Service(); got != 350 {
		t.Errorf("Service() = %v, want 350", got)
	}
}

func TestLayoutBars(t *testing.T) {
	layouts := LayoutBars(6.0212, 84, 25)
	if len(layouts) == 0 {
		t.Fatal("expected bar layouts")
	}
	for _, l := range layouts {
		if l.Provided < 6.0212 {
			t.Errorf("#%d: %d bars provide %.2f in²", l.Bar.Number, l.Count, l.Provided)
		}
		if l.Spacing > MaxBarSpacing(25) || l.Spacing < MinBarSpacing(l.Bar) {
			t.Errorf("#%d: spacing %.2f in out of range", l.Bar.Number, l.Spacing)
		}
	}

	var eight BarLayout
	for _, l := range layouts {
		if l.Bar.Number == 8 {
			eight = l
		}
	}
	if eight.Count != 8 || math.Abs(eight.Spacing-78.0/7) > 1e-9 {
		t.Errorf("#8 layout = %+v, want 8 bars at 11.14 in", eight)
	}

	// light steel over a wide strip is governed by the spacing limit
	for _, l := range LayoutBars(1, 120, 12) {
		if l.Bar.Number == 4 && l.Count != 8 {
			t.Errorf("#4 count = %d, want 8 to stay within 18 in", l.Count)
		}
	}

	if LayoutBars(0, 84, 25) != nil || LayoutBars(1, 5, 25) != nil {
		t.Error("expected no layout for zero steel or a strip narrower than the covers")
	}
}

func TestSpaceBars(t *testing.T) {
	tests := []struct {
		bar     int
		spacing float64
	}{
		{4, 4.0},
		{5, 6.5},
		{11, 18},
	}
	layouts := SpaceBars(0.538, 14)
	for _, tt := range tests {
		found := false
		for _, l := range layouts {
			if l.Bar.Number != tt.bar {
				continue
			}
			found = true
			if l.Spacing != tt.spacing {
				t.Errorf("#%d spacing = %v, want %v", tt.bar, l.Spacing, tt.spacing)
			}
			if l.Provided < 0.538 {
				t.Errorf("#%d provides %.3f in²/ft", tt.bar, l.Provided)
			}
		}
		if !found {
			t.Errorf("#%d missing from layouts", tt.bar)
		}
	}
}
