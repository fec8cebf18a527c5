package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTemperature_DefaultModelUnderpredictsFarPlanet(t *testing.T) {
	params := DefaultModelParams()

	// A planet very far from a sun-like star (luminosity ~3.828e26 W).
	distanceM := 1.5e12
	temp, err := ComputeTemperature(distanceM, 3.828e26, params)
	require.NoError(t, err)
	assert.InDelta(t, params.MinKelvin, temp, 0.5)
}

func TestComputeTemperature_RejectsNonPositiveLuminosity(t *testing.T) {
	params := DefaultModelParams()

	_, err := ComputeTemperature(1.0, 0, params)
	require.Error(t, err)
}

func TestSolveKForObservedTemperature_RoundTripsThroughCompute(t *testing.T) {
	params := DefaultModelParams()
	distanceM := 1.5e12
	luminosityWatts := 3.828e26
	observedTemp := 28.1

	k, err := SolveKForObservedTemperature(distanceM, luminosityWatts, observedTemp, params)
	require.NoError(t, err)

	params.K = k
	recomputed, err := ComputeTemperature(distanceM, luminosityWatts, params)
	require.NoError(t, err)
	assert.InDelta(t, observedTemp, recomputed, 0.2)
}

func TestSolveKForObservedTemperature_RejectsOutOfRangeObservation(t *testing.T) {
	params := DefaultModelParams()

	_, err := SolveKForObservedTemperature(1.0, 1.0, params.MaxKelvin+1, params)
	require.Error(t, err)
}
