// Package shipcatalog loads and validates the ship attribute table that
// parameterizes flight mechanics: hull mass, specific heat, fuel and
// cargo capacity per ship class.
package shipcatalog

import (
	"fmt"
	"math"
)

// FuelMassPerUnitKG is the mass, in kilograms, one unit of fuel
// contributes to a ship's total mass.
const FuelMassPerUnitKG = 1.0

// ShipAttributes is the immutable, validated per-class record loaded
// from the catalog. Hull mass for heat purposes is BaseMassKG.
type ShipAttributes struct {
	Name           string
	BaseMassKG     float64
	SpecificHeat   float64
	FuelCapacity   float64
	CargoCapacity  float64
}

func validateShipAttributes(a ShipAttributes) error {
	if !isPositiveFinite(a.BaseMassKG) {
		return NewShipDataValidationError("base_mass_kg", fmt.Sprintf("base_mass_kg must be positive and finite, got %v", a.BaseMassKG))
	}
	if !isPositiveFinite(a.SpecificHeat) {
		return NewShipDataValidationError("specific_heat", fmt.Sprintf("specific_heat must be positive and finite, got %v", a.SpecificHeat))
	}
	if !isPositiveFinite(a.FuelCapacity) {
		return NewShipDataValidationError("fuel_capacity", fmt.Sprintf("fuel_capacity must be positive and finite, got %v", a.FuelCapacity))
	}
	if math.IsNaN(a.CargoCapacity) || math.IsInf(a.CargoCapacity, 0) || a.CargoCapacity < 0 {
		return NewShipDataValidationError("cargo_capacity", fmt.Sprintf("cargo_capacity must be finite and non-negative, got %v", a.CargoCapacity))
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ShipLoadout is a validated fuel/cargo loadout for a given ShipAttributes.
type ShipLoadout struct {
	Ship        ShipAttributes
	FuelUnits   float64
	CargoMassKG float64
}

// NewShipLoadout validates fuelUnits against [0, ship.FuelCapacity] and
// cargoMassKG against [0, ship.CargoCapacity].
func NewShipLoadout(ship ShipAttributes, fuelUnits, cargoMassKG float64) (*ShipLoadout, error) {
	if math.IsNaN(fuelUnits) || math.IsInf(fuelUnits, 0) || fuelUnits < 0 || fuelUnits > ship.FuelCapacity {
		return nil, NewLoadoutValidationError("fuel_units", fmt.Sprintf("fuel_units must be within [0, %v], got %v", ship.FuelCapacity, fuelUnits))
	}
	if math.IsNaN(cargoMassKG) || math.IsInf(cargoMassKG, 0) || cargoMassKG < 0 || cargoMassKG > ship.CargoCapacity {
		return nil, NewLoadoutValidationError("cargo_mass_kg", fmt.Sprintf("cargo_mass_kg must be within [0, %v], got %v", ship.CargoCapacity, cargoMassKG))
	}
	return &ShipLoadout{Ship: ship, FuelUnits: fuelUnits, CargoMassKG: cargoMassKG}, nil
}

// TotalMassKG returns base mass plus fuel mass plus cargo mass.
func (l *ShipLoadout) TotalMassKG() float64 {
	return l.Ship.BaseMassKG + l.FuelUnits*FuelMassPerUnitKG + l.CargoMassKG
}

// MinimumMassKG returns the mass floor a dynamic-mass route projection
// never drops below: base mass plus cargo mass, i.e. fuel fully spent.
func (l *ShipLoadout) MinimumMassKG() float64 {
	return l.Ship.BaseMassKG + l.CargoMassKG
}
