package capacity

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gofooting/internal/units"
)

// ErrNonPositivePressure is returned when the soil has no capacity left
// for superimposed load
var ErrNonPositivePressure = errors.New("net allowable soil pressure must be positive")

// EffectivePressure returns the net soil pressure (psf) available for the
// superimposed service load once the weight of the footing and of the earth
// fill above it have been deducted.
//
//	qe = qa - h*wc - (bottom - h)*we
func EffectivePressure(allowable, depthFt, bottomFt, concreteWeight, earthWeight float64) float64 {
	fill := math.Max(bottomFt-depthFt, 0)
	return allowable - depthFt*concreteWeight - fill*earthWeight
}

// RequiredBearingArea returns the minimum plan area (ft²) such that the
// service load divided by the area does not exceed the net pressure.
func RequiredBearingArea(serviceLoadKips, netPressurePsf float64) (float64, error) {
	if netPressurePsf <= 0 {
		return 0, ErrNonPositivePressure
	}
	return units.KipsToPounds(serviceLoadKips) / netPressurePsf, nil
}

// FactoredPressure returns the factored net soil pressure (psf) under a footing
// of the given plan area (ft²)
func FactoredPressure(factoredLoadKips, areaFt2 float64) float64 {
	if areaFt2 <= 0 {
		return 0
	}
	return units.KipsToPounds(factoredLoadKips) / areaFt2
}
