package capacity

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gofooting/internal/aci"
)

// FlexureResult holds the results of footing flexural design
type FlexureResult struct {
	Mu float64 // Factored moment (ft-kips)

	// Reinforcement (in²)
	AsRequired float64 // Governing steel area, max(demand, minimum)
	AsDemand   float64 // Steel area from the equilibrium equation
	AsMin      float64 // Code minimum on the gross section
	AsMax      float64 // Tension-controlled maximum

	// Reinforcement ratios
	Rn          float64 // psi
	RhoRequired float64
	RhoMin      float64
	RhoMax      float64

	// Section properties
	A     float64 // Depth of compression block (in)
	PhiMn float64 // Design moment capacity (ft-kips)

	// Status
	IsAdequate bool
	Message    string
}

// FlexuralSteelArea calculates the required tension steel for a singly
// reinforced footing slab strip.
//
//	mu: factored moment at the critical section (ft-kips)
//	d:  effective depth (in)
//	b:  strip width (in)
//	h:  total depth (in), used for the minimum steel floor
//	fy, fc: psi
func FlexuralSteelArea(mu, d, b, h, fy, fc float64) (*FlexureResult, error) {
	if b <= 0 || d <= 0 || h < d {
		return nil, fmt.Errorf("invalid strip dimensions: b=%.2f, d=%.2f, h=%.2f", b, d, h)
	}
	if fc <= 0 || fy <= 0 {
		return nil, fmt.Errorf("invalid material properties: f'c=%.0f, fy=%.0f", fc, fy)
	}

	result := &FlexureResult{Mu: mu}

	result.RhoMin = aci.ShrinkageRhoMin(fy)
	result.RhoMax = aci.RhoMax(fc, fy)
	result.AsMin = result.RhoMin * b * h
	result.AsMax = result.RhoMax * b * d

	// Convert Mu from ft-kips to in-lb
	muInLb := math.Max(mu, 0) * 12000

	// Rn = Mu / (φ * b * d²)
	result.Rn = muInLb / (aci.PhiFlexure * b * d * d)

	// ρ = (0.85*f'c/fy) * (1 - √(1 - 2*Rn/(0.85*f'c)))
	term := 2 * result.Rn / (0.85 * fc)
	if term > 1 {
		result.IsAdequate = false
		result.Message = "Section inadequate - moment exceeds the capacity of the concrete"
		return result, nil
	}

	result.RhoRequired = (0.85 * fc / fy) * (1 - math.Sqrt(1-term))
	result.AsDemand = result.RhoRequired * b * d

	if result.RhoRequired > result.RhoMax {
		result.IsAdequate = false
		result.Message = fmt.Sprintf("Section not tension-controlled: ρ=%.5f > ρmax=%.5f", result.RhoRequired, result.RhoMax)
		return result, nil
	}

	result.AsRequired = math.Max(result.AsDemand, result.AsMin)

	// T = C → As*fy = 0.85*f'c*b*a
	result.A = result.AsRequired * fy / (0.85 * fc * b)
	result.PhiMn = aci.PhiFlexure * result.AsRequired * fy * (d - result.A/2) / 12000

	result.IsAdequate = result.PhiMn >= mu*(1-1e-9)
	if result.AsDemand < result.AsMin {
		result.Message = "Design OK - minimum steel governs"
	} else {
		result.Message = "Design OK - flexural demand governs"
	}

	return result, nil
}

// MaxMomentCapacity returns φMn (ft-kips) of the strip reinforced at ρmax,
// the largest moment a tension-controlled singly reinforced section carries
func MaxMomentCapacity(d, b, fy, fc float64) float64 {
	if d <= 0 || b <= 0 || fc <= 0 || fy <= 0 {
		return 0
	}
	asMax := aci.RhoMax(fc, fy) * b * d
	aMax := asMax * fy / (0.85 * fc * b)
	return aci.PhiFlexure * asMax * fy * (d - aMax/2) / 12000
}
