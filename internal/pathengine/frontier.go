package pathengine

import (
	"math"

	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
)

// FrontierState carries the per-path running totals an EdgeAdmission
// predicate needs but a plain (id, cost) frontier record does not:
// current total mass (only changes under dynamic-mass fuel accounting),
// cumulative fuel used, and current heat.
type FrontierState struct {
	MassKG   float64
	FuelUsed float64
	Heat     float64
}

// AdmissionConfig configures which checks EdgeAdmission.Admit runs.
// Ship, Loadout, HeatConfig and FuelConfig being present or absent
// switches the corresponding check on or off, per spec: constraints
// referencing ship state require both ship and loadout.
type AdmissionConfig struct {
	HasMaxJump         bool
	MaxJumpLY          float64
	AvoidCriticalState bool
	Ship               *shipcatalog.ShipAttributes
	Loadout            *shipcatalog.ShipLoadout
	HeatConfig         *flightmechanics.HeatConfig
	FuelConfig         *flightmechanics.FuelConfig
	InitialFuel        float64
}

// EdgeAdmission composes the three ordered checks from spec §4.6:
// distance, heat-critical, fuel. It rejects on the first failing check.
type EdgeAdmission struct {
	config  AdmissionConfig
	fuelSvc *flightmechanics.FuelService
	heatSvc *flightmechanics.HeatService
}

// NewEdgeAdmission builds a predicate from a resolved AdmissionConfig.
func NewEdgeAdmission(config AdmissionConfig) *EdgeAdmission {
	return &EdgeAdmission{
		config:  config,
		fuelSvc: flightmechanics.NewFuelService(),
		heatSvc: flightmechanics.NewHeatService(),
	}
}

// Admit evaluates whether edge may be traversed from state, returning the
// next FrontierState when admitted.
func (a *EdgeAdmission) Admit(edge Edge, state FrontierState) (bool, FrontierState) {
	next := state

	if !edge.IsGate && a.config.HasMaxJump && edge.DistanceLY > a.config.MaxJumpLY {
		return false, state
	}

	hasShipState := a.config.Ship != nil && a.config.Loadout != nil

	if a.config.AvoidCriticalState && hasShipState && a.config.HeatConfig != nil {
		jumpHeat := a.heatSvc.CalculateJumpHeat(state.MassKG, edge.DistanceLY, a.config.Ship.BaseMassKG, *a.config.HeatConfig)
		postHeat := state.Heat + jumpHeat
		if flightmechanics.ClassifyHeat(postHeat) == flightmechanics.HeatCriticalClass {
			return false, state
		}
		next.Heat = postHeat
	}

	if hasShipState && a.config.FuelConfig != nil {
		cost, err := a.fuelSvc.CalculateFuelCost(state.MassKG, edge.DistanceLY, *a.config.FuelConfig)
		if err != nil {
			return false, state
		}
		cumulative := state.FuelUsed + cost
		if cumulative > a.config.InitialFuel {
			return false, state
		}
		next.FuelUsed = cumulative
		if a.config.FuelConfig.DynamicMass {
			next.MassKG = math.Max(a.config.Loadout.MinimumMassKG(), state.MassKG-cost*flightmechanics.FuelMassPerUnitKG)
		}
	}

	return true, next
}

// InitialFrontierState builds the starting state for a search: full
// loadout mass and zero fuel used, zero heat.
func InitialFrontierState(config AdmissionConfig) FrontierState {
	if config.Loadout != nil {
		return FrontierState{MassKG: config.Loadout.TotalMassKG()}
	}
	return FrontierState{}
}

// InitialState returns the starting FrontierState for this predicate's own
// config. Callers seeding a search must use this rather than
// InitialFrontierState(AdmissionConfig{}), which always yields mass 0.
func (a *EdgeAdmission) InitialState() FrontierState {
	return InitialFrontierState(a.config)
}

// AlwaysAdmit is the no-op predicate for searches with no ship
// constraints: BFS over gate links, or unconstrained Dijkstra/A*.
func AlwaysAdmit() *EdgeAdmission {
	return NewEdgeAdmission(AdmissionConfig{})
}
