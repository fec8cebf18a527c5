package flightmechanics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateJumpHeat_MatchesFixtureValues(t *testing.T) {
	svc := NewHeatService()
	config := HeatConfig{Calibration: 1.0}
	totalMass := 12_383_006.0
	hull := 10_000_000.0

	assert.InDelta(t, 70.39738911, svc.CalculateJumpHeat(totalMass, 18.95, hull, config), 0.01)
	assert.InDelta(t, 142.132142868, svc.CalculateJumpHeat(totalMass, 38.26, hull, config), 0.01)
	assert.InDelta(t, 85.777082562, svc.CalculateJumpHeat(totalMass, 23.09, hull, config), 0.01)
}

func TestCalculateJumpHeat_GateTransitionIsZero(t *testing.T) {
	svc := NewHeatService()
	heat := svc.CalculateJumpHeat(12_383_006.0, 0, 10_000_000.0, HeatConfig{Calibration: 1.0})
	assert.Equal(t, 0.0, heat)
}

func TestCalculateJumpHeat_DynamicMassReduction(t *testing.T) {
	svc := NewHeatService()
	reducedMass := 12_359_536.0
	heat := svc.CalculateJumpHeat(reducedMass, 38.26, 10_000_000.0, HeatConfig{Calibration: 1.0})
	assert.InDelta(t, 141.86275420799998, heat, 0.02)
}

func TestCalculateJumpHeat_EmptyCargoMinimumMass(t *testing.T) {
	svc := NewHeatService()
	total := 10_001_750.0
	heat := svc.CalculateJumpHeat(total, 18.95, 10_000_000.0, HeatConfig{Calibration: 1.0})
	assert.InDelta(t, 56.85994875, heat, 0.01)
}

func TestClassifyHeat_Thresholds(t *testing.T) {
	assert.Equal(t, HeatNominalClass, ClassifyHeat(0))
	assert.Equal(t, HeatNominalClass, ClassifyHeat(29.99))
	assert.Equal(t, HeatElevatedClass, ClassifyHeat(30))
	assert.Equal(t, HeatElevatedClass, ClassifyHeat(89.99))
	assert.Equal(t, HeatOverheatedClass, ClassifyHeat(90))
	assert.Equal(t, HeatOverheatedClass, ClassifyHeat(149.99))
	assert.Equal(t, HeatCriticalClass, ClassifyHeat(150))
	assert.Equal(t, HeatCriticalClass, ClassifyHeat(1000))
}

func TestCoolingWait_ZeroWhenAlreadyAtOrBelowTarget(t *testing.T) {
	svc := NewHeatService()
	assert.Equal(t, 0.0, svc.CoolingWait(20, 30, 0, 10_000_000, 0.45))
	assert.Equal(t, 0.0, svc.CoolingWait(30, 30, 0, 10_000_000, 0.45))
}

func TestCoolingWait_PositiveWhenAboveTarget(t *testing.T) {
	svc := NewHeatService()
	wait := svc.CoolingWait(100, 30, 0, 10_000_000, 0.45)
	assert.Greater(t, wait, 0.0)
}

func TestCoolingWait_EpsilonGuardsTargetNearAmbient(t *testing.T) {
	svc := NewHeatService()
	wait := svc.CoolingWait(100, 0, 0, 10_000_000, 0.45)
	assert.Greater(t, wait, 0.0)
	assert.False(t, isNaNOrInf(wait))
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e308 || v < -1e308
}
