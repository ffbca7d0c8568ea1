package aci

import (
	"fmt"
	"math"
)

// ACI 318-19 Material and Design Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 4000 psi
	Beta1Min = 0.65 // for f'c >= 8000 psi

	// Ultimate concrete strain (Section 22.2.2.1)
	EpsilonCU = 0.003

	// Strength reduction factors (Table 21.2.1)
	PhiFlexure = 0.90 // Tension-controlled sections
	PhiShear   = 0.75 // Shear
)

// Footing detailing limits
const (
	// Clear cover for concrete cast against earth (Table 20.5.1.3.1)
	ClearCover = 3.0 // in

	// Column footings carry two orthogonal layers; d is taken to their
	// average, 3 in cover plus one and a half #8 bar diameters.
	ColumnFootingCover = 4.5 // in

	// Wall footings carry a single main layer, 3 in cover plus half a bar.
	WallFootingCover = 3.5 // in

	// Minimum depth of footing above bottom reinforcement (Section 13.3.1.2)
	MinEffectiveDepth = 6.0 // in

	// Practical search bounds
	MaxDepth         = 20.0  // ft
	MaxPlanDimension = 200.0 // ft
)

// Concrete types
const (
	NormalWeight    = "nw"
	SandLightweight = "slw"
	AllLightweight  = "lw"
)

// Column locations for two-way shear
const (
	Interior = "interior"
	Edge     = "edge"
	Corner   = "corner"
)

// Beta1 calculates the factor for equivalent rectangular stress block
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= 4000 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 4000)/1000
	beta1 := Beta1Max - 0.05*(fc-4000)/1000
	return math.Max(beta1, Beta1Min)
}

// RhoMax calculates maximum reinforcement ratio for a tension-controlled section
// Based on strain compatibility with εt = 0.005
func RhoMax(fc, fy float64) float64 {
	beta1 := Beta1(fc)
	// c/d = εcu / (εcu + εt) = 0.003 / (0.003 + 0.005) = 0.375
	return 0.85 * beta1 * (fc / fy) * (EpsilonCU / (EpsilonCU + 0.005))
}

// ShrinkageRhoMin returns the minimum flexural reinforcement ratio of a footing
// slab, taken on the gross section b*h.
// ACI 318-19 Section 7.6.1.1 and Table 24.4.3.2
func ShrinkageRhoMin(fy float64) float64 {
	if fy < 60000 {
		return 0.0020
	}
	return math.Max(0.0018*60000/fy, 0.0014)
}

// Lambda returns the lightweight concrete modification factor
// ACI 318-19 Table 19.2.4.2
func Lambda(concreteType string) (float64, error) {
	switch concreteType {
	case NormalWeight:
		return 1.0, nil
	case SandLightweight:
		return 0.85, nil
	case AllLightweight:
		return 0.75, nil
	}
	return 0, fmt.Errorf("unknown concrete type %q", concreteType)
}

// Alpha returns the αs constant for two-way shear of a column at the given location
// ACI 318-19 Table 22.6.5.2
func Alpha(location string) (float64, error) {
	switch location {
	case Interior:
		return 40, nil
	case Edge:
		return 30, nil
	case Corner:
		return 20, nil
	}
	return 0, fmt.Errorf("unknown column location %q", location)
}
