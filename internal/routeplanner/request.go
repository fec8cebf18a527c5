package routeplanner

import (
	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
)

// Algorithm selects which pathfinding engine RoutePlanner dispatches to.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmDijkstra
	AlgorithmAStar
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmAStar:
		return "a-star"
	default:
		return "unknown"
	}
}

// OutputKind distinguishes a point-to-point route from an exploratory
// search, purely for the rendered heading ("Route:" vs "Search:").
type OutputKind int

const (
	OutputKindRoute OutputKind = iota
	OutputKindSearch
)

func (k OutputKind) label() string {
	if k == OutputKindSearch {
		return "Search"
	}
	return "Route"
}

// RouteConstraints mirrors spec's RouteConstraints: optional max jump
// range, gate/heat avoidance flags, and the ship state needed to
// evaluate them. Constraints referencing ship state require both Ship
// and Loadout to be set; ValidateConsistency enforces that.
type RouteConstraints struct {
	HasMaxJump         bool
	MaxJumpLY          float64
	AvoidGates         bool
	AvoidCriticalState bool
	Ship               *shipcatalog.ShipAttributes
	Loadout            *shipcatalog.ShipLoadout
	HeatConfig         *flightmechanics.HeatConfig
	FuelConfig         *flightmechanics.FuelConfig
}

// ValidateConsistency rejects constraint combinations that reference
// ship state without supplying it.
func (c RouteConstraints) ValidateConsistency() error {
	hasShipState := c.Ship != nil && c.Loadout != nil

	if c.AvoidCriticalState && (!hasShipState || c.HeatConfig == nil) {
		return NewUnsupportedOptionError("avoid_critical_state requires ship, loadout and heat_config")
	}
	if c.FuelConfig != nil && !hasShipState {
		return NewUnsupportedOptionError("fuel_config requires ship and loadout")
	}
	if c.HeatConfig != nil && !hasShipState {
		return NewUnsupportedOptionError("heat_config requires ship and loadout")
	}
	return nil
}

// RouteRequest is the caller-facing input to RoutePlanner.PlanRoute:
// system names rather than ids, since ids are an implementation detail
// of the loaded dataset.
type RouteRequest struct {
	StartName   string
	GoalName    string
	Algorithm   Algorithm
	Constraints RouteConstraints
}
