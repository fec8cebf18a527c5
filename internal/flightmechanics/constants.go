package flightmechanics

// FuelAlpha is the fuel-cost proportionality constant, back-calibrated
// from the reference fixtures so that cost = m_kg * d_ly * FuelAlpha / q
// reproduces the published Reflex-ship projections to float precision.
const FuelAlpha = 1e-5

// HeatAlpha is the heat-per-jump proportionality constant, back-calibrated
// the same way: heat = calibration * HeatAlpha * (m_kg / hull_kg) * d_ly.
const HeatAlpha = 3.0

// FuelMassPerUnitKG is the mass, in kilograms, one unit of fuel
// contributes to a ship's total mass.
const FuelMassPerUnitKG = 1.0

// Heat classification thresholds.
const (
	HeatNominal    = 30.0
	HeatOverheated = 90.0
	HeatCritical   = 150.0
)

// BaseCoolingPower is the denominator of the Newtonian cooling time
// constant tau = m*c_p / BaseCoolingPower.
const BaseCoolingPower = 1e6

// CoolingEpsilon guards ln() against a zero or negative argument when the
// cooling target approaches ambient temperature.
const CoolingEpsilon = 0.01

// MetresPerLightYear converts a metre distance into light-years.
const MetresPerLightYear = 9.4607304725808e15
