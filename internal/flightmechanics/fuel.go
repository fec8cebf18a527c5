package flightmechanics

import (
	"math"

	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
)

// FuelConfig parameterizes fuel cost and route projection. Quality halves
// cost when doubled; DynamicMass selects whether mass is held constant
// for the whole route or reduced hop by hop as fuel burns.
type FuelConfig struct {
	Quality     float64
	DynamicMass bool
}

// FuelService computes fuel cost, route projections and maximum jump
// distance. It is stateless; every method is a pure function of its
// arguments.
type FuelService struct{}

// NewFuelService returns a FuelService. There is no state to configure.
func NewFuelService() *FuelService {
	return &FuelService{}
}

// CalculateFuelCost returns the fuel units consumed by a single hop of
// distanceLY at massKG total mass, under config. A gate transition
// (distanceLY == 0) always costs 0.
func (s *FuelService) CalculateFuelCost(massKG, distanceLY float64, config FuelConfig) (float64, error) {
	if config.Quality <= 0 || massKG <= 0 || distanceLY < 0 {
		return 0, NewInvalidFuelParamsError(config.Quality, massKG, distanceLY)
	}
	if distanceLY == 0 {
		return 0, nil
	}
	return massKG * distanceLY * FuelAlpha / config.Quality, nil
}

// HopFuelProjection is the per-hop fuel enrichment emitted by
// CalculateRouteFuel: cost of this hop, running total, and fuel
// remaining (clamped to 0 once the cumulative exceeds the initial fuel).
type HopFuelProjection struct {
	HopCost    float64
	Cumulative float64
	Remaining  float64
	Warning    string
}

// CalculateRouteFuel projects fuel consumption across an ordered list of
// hop distances for a ship and loadout. With DynamicMass set, mass is
// reduced by each hop's cost before computing the next hop, never
// dropping below the loadout's minimum mass (base + cargo).
func (s *FuelService) CalculateRouteFuel(ship shipcatalog.ShipAttributes, loadout *shipcatalog.ShipLoadout, distancesLY []float64, config FuelConfig) ([]HopFuelProjection, error) {
	projections := make([]HopFuelProjection, 0, len(distancesLY))

	currentMass := loadout.TotalMassKG()
	minimumMass := loadout.MinimumMassKG()
	cumulative := 0.0
	insufficient := false

	for _, d := range distancesLY {
		cost, err := s.CalculateFuelCost(currentMass, d, config)
		if err != nil {
			return nil, err
		}

		cumulative += cost
		if cumulative > loadout.FuelUnits {
			insufficient = true
		}

		remaining := math.Max(0, loadout.FuelUnits-cumulative)
		if insufficient {
			remaining = 0
		}

		hop := HopFuelProjection{HopCost: cost, Cumulative: cumulative, Remaining: remaining}
		if insufficient {
			hop.Warning = "insufficient_fuel"
		}
		projections = append(projections, hop)

		if config.DynamicMass {
			currentMass = math.Max(minimumMass, currentMass-cost*FuelMassPerUnitKG)
		}
	}

	return projections, nil
}

// MaxJumpDistance inverts the fuel cost formula to find the furthest
// distance reachable in one hop with the fuel units available.
func (s *FuelService) MaxJumpDistance(massKG, availableFuel float64, config FuelConfig) (float64, error) {
	if config.Quality <= 0 || massKG <= 0 {
		return 0, NewInvalidFuelParamsError(config.Quality, massKG, 0)
	}
	if availableFuel <= 0 {
		return 0, nil
	}
	return availableFuel * config.Quality / (massKG * FuelAlpha), nil
}
