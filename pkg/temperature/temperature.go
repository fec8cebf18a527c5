// Package temperature implements the non-core planet surface temperature
// model. It is not used by internal/routeplanner and carries no
// pathfinding invariant; the calibration constant k is disputed against
// a single in-game observation in the original source, so this model is
// implemented for completeness but not relied upon. See DESIGN.md.
package temperature

import (
	"fmt"
	"math"
)

// ModelParams are the tunable constants of the temperature curve.
type ModelParams struct {
	MinKelvin float64
	MaxKelvin float64
	K         float64
	B         float64
}

// DefaultModelParams mirrors the original model's defaults. K is the
// disputed calibration constant: the original source documents that
// these defaults underpredict at least one observed in-game value by
// roughly two orders of magnitude.
func DefaultModelParams() ModelParams {
	return ModelParams{
		MinKelvin: 3.0,
		MaxKelvin: 5800.0,
		K:         1.0,
		B:         2.0,
	}
}

// TemperatureError is returned for inputs the model cannot evaluate.
type TemperatureError struct {
	Message string
}

func (e *TemperatureError) Error() string {
	return e.Message
}

func newInvalidParamsError(distanceM, luminosityWatts float64) *TemperatureError {
	return &TemperatureError{Message: fmt.Sprintf("invalid temperature inputs: distance=%g luminosity=%g", distanceM, luminosityWatts)}
}

// ComputeTemperature evaluates T = T_min + (T_max - T_min) / (1 + (d / (k*sqrt(L)))^b)
// for a planet at distanceM metres from a star with luminosityWatts.
func ComputeTemperature(distanceM, luminosityWatts float64, params ModelParams) (float64, error) {
	if distanceM < 0 || luminosityWatts <= 0 || math.IsNaN(distanceM) || math.IsNaN(luminosityWatts) {
		return 0, newInvalidParamsError(distanceM, luminosityWatts)
	}

	sqrtL := math.Sqrt(luminosityWatts)
	ratio := distanceM / (params.K * sqrtL)
	return params.MinKelvin + (params.MaxKelvin-params.MinKelvin)/(1+math.Pow(ratio, params.B)), nil
}

// SolveKForObservedTemperature inverts the model to find the k that
// would make it reproduce an observed temperature at the given distance
// and luminosity, holding b/min/max fixed. Used to document the
// discrepancy between the default model and in-game observations rather
// than to drive production behaviour.
func SolveKForObservedTemperature(distanceM, luminosityWatts, observedTemp float64, params ModelParams) (float64, error) {
	if observedTemp <= params.MinKelvin || observedTemp >= params.MaxKelvin {
		return 0, &TemperatureError{Message: fmt.Sprintf("observed temperature %g out of model range (%g, %g)", observedTemp, params.MinKelvin, params.MaxKelvin)}
	}

	sqrtL := math.Sqrt(luminosityWatts)
	inner := (params.MaxKelvin-params.MinKelvin)/(observedTemp-params.MinKelvin) - 1.0
	ratio := math.Pow(inner, 1.0/params.B)
	return distanceM / (sqrtL * ratio), nil
}
