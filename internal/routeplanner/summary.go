package routeplanner

import (
	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/starmap"
)

// FuelProjection is the per-step fuel enrichment.
type FuelProjection struct {
	HopCost    float64
	Cumulative float64
	Remaining  float64
	Warning    string
}

// HeatProjection is the per-step heat enrichment.
type HeatProjection struct {
	AfterJumpHeat      float64
	Classification     flightmechanics.HeatClass
	CoolingWaitSeconds float64
	Warning            string
}

// RouteStep is one enriched stop along a RoutePlan.
type RouteStep struct {
	Index       int
	ID          int64
	Name        string
	Distance    float64
	HasDistance bool
	Method      string // "gate" or "jump"; empty for the first step
	PlanetCount *uint32
	MoonCount   *uint32
	Fuel        *FuelProjection
	Heat        *HeatProjection
}

// RouteSummary is the enriched, render-ready form of a RoutePlan.
type RouteSummary struct {
	Kind      OutputKind
	Algorithm Algorithm
	StartName string
	GoalName  string
	Hops      int
	Steps     []RouteStep
	Gates     uint
	Jumps     uint
}

// FromPlan builds a RouteSummary from a RoutePlan, enriching each step
// with name lookups, hop distances, and fuel/heat projections when ship
// and loadout are present. Rejects empty plans.
func FromPlan(kind OutputKind, sm *starmap.Starmap, plan *RoutePlan, constraints RouteConstraints) (*RouteSummary, error) {
	if plan == nil || len(plan.Steps) == 0 {
		return nil, NewEmptyPlanError()
	}

	graphChecker := graphAdjacency(sm)

	var distancesLY []float64
	for i := 1; i < len(plan.Steps); i++ {
		from, _ := sm.System(plan.Steps[i-1])
		to, _ := sm.System(plan.Steps[i])
		if graphChecker.AreAdjacent(plan.Steps[i-1], plan.Steps[i]) {
			distancesLY = append(distancesLY, 0)
		} else {
			distancesLY = append(distancesLY, from.LightYearsTo(to))
		}
	}

	var fuelProjections []flightmechanics.HopFuelProjection
	var heatProjections []flightmechanics.HopHeatProjection
	hasShipState := constraints.Ship != nil && constraints.Loadout != nil

	if hasShipState && constraints.FuelConfig != nil {
		fuelSvc := flightmechanics.NewFuelService()
		projections, err := fuelSvc.CalculateRouteFuel(*constraints.Ship, constraints.Loadout, distancesLY, *constraints.FuelConfig)
		if err == nil {
			fuelProjections = projections
		}
	}
	if hasShipState && constraints.HeatConfig != nil {
		heatSvc := flightmechanics.NewHeatService()
		heatProjections = heatSvc.CalculateRouteHeat(constraints.Loadout.TotalMassKG(), constraints.Ship.BaseMassKG, 0, distancesLY, *constraints.HeatConfig, constraints.Ship.SpecificHeat)
	}

	steps := make([]RouteStep, 0, len(plan.Steps))
	for i, id := range plan.Steps {
		sys, _ := sm.System(id)
		step := RouteStep{
			Index:       i,
			ID:          id,
			Name:        sys.Name,
			PlanetCount: sys.PlanetCount,
			MoonCount:   sys.MoonCount,
		}

		if i > 0 {
			hopIdx := i - 1
			if graphChecker.AreAdjacent(plan.Steps[i-1], id) {
				step.Method = "gate"
			} else {
				step.Method = "jump"
				step.Distance = distancesLY[hopIdx]
				step.HasDistance = true
			}

			if hopIdx < len(fuelProjections) {
				p := fuelProjections[hopIdx]
				step.Fuel = &FuelProjection{HopCost: p.HopCost, Cumulative: p.Cumulative, Remaining: p.Remaining, Warning: p.Warning}
			}
			if hopIdx < len(heatProjections) {
				p := heatProjections[hopIdx]
				step.Heat = &HeatProjection{
					AfterJumpHeat:      p.Cumulative,
					Classification:     p.Classification,
					CoolingWaitSeconds: p.CoolingWait,
				}
				if p.Classification == flightmechanics.HeatCriticalClass {
					step.Heat.Warning = "critical_heat"
				}
			}
		}

		steps = append(steps, step)
	}

	startName, _ := sm.SystemName(plan.Start)
	goalName, _ := sm.SystemName(plan.Goal)

	return &RouteSummary{
		Kind:      kind,
		Algorithm: plan.Algorithm,
		StartName: startName,
		GoalName:  goalName,
		Hops:      len(plan.Steps) - 1,
		Steps:     steps,
		Gates:     plan.Gates,
		Jumps:     plan.Jumps,
	}, nil
}

func graphAdjacency(sm *starmap.Starmap) adjacencyChecker {
	return adjacencyMap(sm.Adjacency())
}

type adjacencyMap map[int64][]int64

func (a adjacencyMap) AreAdjacent(x, y int64) bool {
	for _, n := range a[x] {
		if n == y {
			return true
		}
	}
	return false
}
