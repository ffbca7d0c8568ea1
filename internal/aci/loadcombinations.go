package aci

// LoadCombination represents an ACI strength design load combination
// Based on ACI 318-19 Section 5.3 - Load Factors and Combinations
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64 // D - Dead load
	Live float64 // L - Live load
}

// GravityCombinations are the combinations that apply to footings carrying
// dead and live load only (Table 5.3.1, Eq. 5.3.1a and 5.3.1b)
var GravityCombinations = []LoadCombination{
	{
		ID:          "5.3.1a",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "5.3.1b",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Loads holds unfactored loads acting on a footing
type Loads struct {
	Dead float64 // kips or kips/ft
	Live float64 // kips or kips/ft
}

// Service returns the unfactored service load D + L
func (l Loads) Service() float64 {
	return l.Dead + l.Live
}

// CalculateFactoredLoad calculates the factored load for a given load combination
func (lc LoadCombination) CalculateFactoredLoad(loads Loads) float64 {
	return lc.Dead*loads.Dead + lc.Live*loads.Live
}

// CalculateGoverningLoad finds the maximum factored load from all combinations
func CalculateGoverningLoad(loads Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		pu := combo.CalculateFactoredLoad(loads)
		if pu > maxLoad {
			maxLoad = pu
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}
