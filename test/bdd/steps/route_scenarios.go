package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/routeplanner"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
	"github.com/frontierlabs/evefrontier/internal/starmap"
)

const metresPerLightYear = 9.4607304725808e15

type routeScenarioContext struct {
	sm          *starmap.Starmap
	planner     *routeplanner.RoutePlanner
	constraints routeplanner.RouteConstraints
	plan        *routeplanner.RoutePlan
	planErr     error
}

func (c *routeScenarioContext) reset() {
	c.sm = nil
	c.planner = nil
	c.constraints = routeplanner.RouteConstraints{}
	c.plan = nil
	c.planErr = nil
}

func (c *routeScenarioContext) theMinimalThreeSystemStarmap() error {
	sm, err := starmap.NewFromSystems([]starmap.System{
		{ID: 1, Name: "Y:170N"},
		{ID: 2, Name: "GammaTest"},
		{ID: 3, Name: "BetaTest"},
	}, [][2]int64{{1, 2}, {2, 3}})
	if err != nil {
		return err
	}
	c.sm = sm
	c.planner = routeplanner.New(sm, nil)
	return nil
}

func (c *routeScenarioContext) theCriticalAvoidanceStarmap() error {
	ly := metresPerLightYear
	sm, err := starmap.NewFromSystems([]starmap.System{
		{ID: 1, Name: "Nod", X: 0, Y: 0, Z: 0},
		{ID: 2, Name: "Mid", X: 200 * ly, Y: 0, Z: 0},
		{ID: 3, Name: "Brana", X: 380 * ly, Y: 0, Z: 0},
	}, nil)
	if err != nil {
		return err
	}
	c.sm = sm
	c.planner = routeplanner.New(sm, nil)
	return nil
}

func (c *routeScenarioContext) iRequestARouteFromToUsing(start, goal, algorithm string) error {
	algo, err := parseAlgorithmName(algorithm)
	if err != nil {
		return err
	}
	c.plan, c.planErr = c.planner.PlanRoute(routeplanner.RouteRequest{
		StartName:   start,
		GoalName:    goal,
		Algorithm:   algo,
		Constraints: c.constraints,
	})
	return nil
}

func (c *routeScenarioContext) theShipIsWithFuelAndCargo(shipName string, fuelUnits, cargoMassKG float64) error {
	ship := shipcatalog.ShipAttributes{
		Name:          shipName,
		BaseMassKG:    10_000_000,
		SpecificHeat:  0.45,
		FuelCapacity:  1750,
		CargoCapacity: 633_006,
	}
	loadout, err := shipcatalog.NewShipLoadout(ship, fuelUnits, cargoMassKG)
	if err != nil {
		return err
	}
	c.constraints.Ship = &ship
	c.constraints.Loadout = loadout
	return nil
}

func (c *routeScenarioContext) theMaxJumpRangeIsLightYears(ly float64) error {
	c.constraints.HasMaxJump = true
	c.constraints.MaxJumpLY = ly
	return nil
}

func (c *routeScenarioContext) gatesAreAvoided() error {
	c.constraints.AvoidGates = true
	return nil
}

func (c *routeScenarioContext) criticalHeatStateIsAvoidedWithCalibration(calibration float64) error {
	c.constraints.AvoidCriticalState = true
	c.constraints.HeatConfig = &flightmechanics.HeatConfig{Calibration: calibration}
	return nil
}

func (c *routeScenarioContext) criticalHeatStateIsNotAvoidedWithCalibration(calibration float64) error {
	c.constraints.AvoidCriticalState = false
	c.constraints.HeatConfig = &flightmechanics.HeatConfig{Calibration: calibration}
	return nil
}

func (c *routeScenarioContext) theRouteShouldBePlannedSuccessfully() error {
	if c.planErr != nil {
		return fmt.Errorf("expected a route but got error: %v", c.planErr)
	}
	if c.plan == nil {
		return fmt.Errorf("expected a route plan but got nil")
	}
	return nil
}

func (c *routeScenarioContext) theFirstStepShouldBe(name string) error {
	if c.plan == nil {
		return fmt.Errorf("no plan to inspect")
	}
	id, ok := c.sm.SystemIDByName(name)
	if !ok {
		return fmt.Errorf("unknown system %q in fixture", name)
	}
	if c.plan.Steps[0] != id {
		return fmt.Errorf("expected first step to be %q (id %d), got id %d", name, id, c.plan.Steps[0])
	}
	return nil
}

func (c *routeScenarioContext) theLastStepShouldBe(name string) error {
	if c.plan == nil {
		return fmt.Errorf("no plan to inspect")
	}
	id, ok := c.sm.SystemIDByName(name)
	if !ok {
		return fmt.Errorf("unknown system %q in fixture", name)
	}
	last := c.plan.Steps[len(c.plan.Steps)-1]
	if last != id {
		return fmt.Errorf("expected last step to be %q (id %d), got id %d", name, id, last)
	}
	return nil
}

func (c *routeScenarioContext) theHopCountShouldBeAtLeast(minHops int) error {
	if c.plan == nil {
		return fmt.Errorf("no plan to inspect")
	}
	hops := len(c.plan.Steps) - 1
	if hops < minHops {
		return fmt.Errorf("expected at least %d hops, got %d", minHops, hops)
	}
	return nil
}

func (c *routeScenarioContext) planningShouldFailWithRouteNotFound() error {
	if c.planErr == nil {
		return fmt.Errorf("expected planning to fail with route not found but it succeeded")
	}
	var notFound *routeplanner.RouteNotFoundError
	if !errors.As(c.planErr, &notFound) {
		return fmt.Errorf("expected RouteNotFoundError, got %T: %v", c.planErr, c.planErr)
	}
	return nil
}

func (c *routeScenarioContext) thePlanShouldHaveAtLeastSteps(minSteps int) error {
	if c.planErr != nil {
		return fmt.Errorf("expected a plan but got error: %v", c.planErr)
	}
	if len(c.plan.Steps) < minSteps {
		return fmt.Errorf("expected at least %d steps, got %d", minSteps, len(c.plan.Steps))
	}
	return nil
}

func parseAlgorithmName(s string) (routeplanner.Algorithm, error) {
	switch s {
	case "bfs":
		return routeplanner.AlgorithmBFS, nil
	case "dijkstra":
		return routeplanner.AlgorithmDijkstra, nil
	case "a-star":
		return routeplanner.AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}

// InitializeRouteScenarios registers the route-planning feature steps.
func InitializeRouteScenarios(sc *godog.ScenarioContext) {
	routeCtx := &routeScenarioContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		routeCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the minimal three-system starmap$`, routeCtx.theMinimalThreeSystemStarmap)
	sc.Step(`^the critical-avoidance starmap$`, routeCtx.theCriticalAvoidanceStarmap)
	sc.Step(`^the ship is "([^"]*)" with (\d+(?:\.\d+)?) fuel units and (\d+(?:\.\d+)?) kg of cargo$`, routeCtx.theShipIsWithFuelAndCargo)
	sc.Step(`^the max jump range is (\d+(?:\.\d+)?) light-years$`, routeCtx.theMaxJumpRangeIsLightYears)
	sc.Step(`^gates are avoided$`, routeCtx.gatesAreAvoided)
	sc.Step(`^critical heat state is avoided with calibration (\d+(?:\.\d+)?)$`, routeCtx.criticalHeatStateIsAvoidedWithCalibration)
	sc.Step(`^critical heat state is not avoided with calibration (\d+(?:\.\d+)?)$`, routeCtx.criticalHeatStateIsNotAvoidedWithCalibration)
	sc.Step(`^I request a route from "([^"]*)" to "([^"]*)" using (bfs|dijkstra|a-star)$`, routeCtx.iRequestARouteFromToUsing)
	sc.Step(`^the route should be planned successfully$`, routeCtx.theRouteShouldBePlannedSuccessfully)
	sc.Step(`^the first step should be "([^"]*)"$`, routeCtx.theFirstStepShouldBe)
	sc.Step(`^the last step should be "([^"]*)"$`, routeCtx.theLastStepShouldBe)
	sc.Step(`^the hop count should be at least (\d+)$`, routeCtx.theHopCountShouldBeAtLeast)
	sc.Step(`^planning should fail with route not found$`, routeCtx.planningShouldFailWithRouteNotFound)
	sc.Step(`^the plan should have at least (\d+) steps$`, routeCtx.thePlanShouldHaveAtLeastSteps)
}
