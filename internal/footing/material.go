package footing

import "github.com/alexiusacademia/gofooting/internal/aci"

// MaterialParameters are derived once from a DesignInput
type MaterialParameters struct {
	Lambda             float64 // lightweight concrete factor
	Fc                 float64 // psi
	Fy                 float64 // psi
	ConcreteUnitWeight float64 // pcf
	EarthUnitWeight    float64 // pcf
}

// NewMaterialParameters resolves the material properties of a validated input
func NewMaterialParameters(in DesignInput) (MaterialParameters, error) {
	lambda, err := aci.Lambda(in.ConcreteType)
	if err != nil {
		return MaterialParameters{}, err
	}
	return MaterialParameters{
		Lambda:             lambda,
		Fc:                 in.Fc,
		Fy:                 in.Grade * 1000,
		ConcreteUnitWeight: in.ConcreteUnitWeight,
		EarthUnitWeight:    in.EarthUnitWeight,
	}, nil
}
