package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
)

type flightMechanicsContext struct {
	ship         shipcatalog.ShipAttributes
	loadout      *shipcatalog.ShipLoadout
	distancesLY  []float64
	fuelProj     []flightmechanics.HopFuelProjection
	heatProj     []flightmechanics.HopHeatProjection
	fuelErr      error
	totalMassKG  float64
	hullMassKG   float64
	calibration  float64
}

func (c *flightMechanicsContext) reset() {
	c.ship = shipcatalog.ShipAttributes{}
	c.loadout = nil
	c.distancesLY = nil
	c.fuelProj = nil
	c.heatProj = nil
	c.fuelErr = nil
	c.totalMassKG = 0
	c.hullMassKG = 0
	c.calibration = 0
}

func reflexAttributes() shipcatalog.ShipAttributes {
	return shipcatalog.ShipAttributes{
		Name:          "Reflex",
		BaseMassKG:    10_000_000,
		SpecificHeat:  0.45,
		FuelCapacity:  1750,
		CargoCapacity: 633_006,
	}
}

func (c *flightMechanicsContext) theReflexLoadoutWithFuelAndCargo(fuelUnits, cargoMassKG float64) error {
	c.ship = reflexAttributes()
	loadout, err := shipcatalog.NewShipLoadout(c.ship, fuelUnits, cargoMassKG)
	if err != nil {
		return err
	}
	c.loadout = loadout
	return nil
}

func (c *flightMechanicsContext) theHopDistancesAreLightYears(a, b, d float64) error {
	c.distancesLY = []float64{a, b, d}
	return nil
}

func (c *flightMechanicsContext) iProjectRouteFuelWithQualityAndMassMode(quality float64, massMode string) error {
	config := flightmechanics.FuelConfig{Quality: quality, DynamicMass: massMode == "dynamic"}
	svc := flightmechanics.NewFuelService()
	proj, err := svc.CalculateRouteFuel(c.ship, c.loadout, c.distancesLY, config)
	c.fuelProj = proj
	c.fuelErr = err
	return nil
}

func (c *flightMechanicsContext) theFirstHopFuelCostShouldBeApproximately(expected, tolerance float64) error {
	if c.fuelErr != nil {
		return fmt.Errorf("fuel projection failed: %v", c.fuelErr)
	}
	return approxEqual("hop-1 cost", c.fuelProj[0].HopCost, expected, tolerance)
}

func (c *flightMechanicsContext) theFinalCumulativeFuelShouldBeApproximately(expected, tolerance float64) error {
	if c.fuelErr != nil {
		return fmt.Errorf("fuel projection failed: %v", c.fuelErr)
	}
	last := c.fuelProj[len(c.fuelProj)-1]
	return approxEqual("cumulative fuel", last.Cumulative, expected, tolerance)
}

func (c *flightMechanicsContext) theFinalRemainingFuelShouldBeApproximately(expected, tolerance float64) error {
	if c.fuelErr != nil {
		return fmt.Errorf("fuel projection failed: %v", c.fuelErr)
	}
	last := c.fuelProj[len(c.fuelProj)-1]
	return approxEqual("remaining fuel", last.Remaining, expected, tolerance)
}

func (c *flightMechanicsContext) dynamicCumulativeShouldBeLessThanStatic(staticCumulative float64) error {
	if c.fuelErr != nil {
		return fmt.Errorf("fuel projection failed: %v", c.fuelErr)
	}
	last := c.fuelProj[len(c.fuelProj)-1]
	if last.Cumulative >= staticCumulative {
		return fmt.Errorf("expected dynamic cumulative %v to be less than static cumulative %v", last.Cumulative, staticCumulative)
	}
	return nil
}

func (c *flightMechanicsContext) theTotalMassIsKgAndHullMassIsKgAndCalibrationIs(mass, hull, calibration float64) error {
	c.totalMassKG = mass
	c.hullMassKG = hull
	c.calibration = calibration
	return nil
}

func (c *flightMechanicsContext) iCalculateTheJumpHeatForEachHop() error {
	svc := flightmechanics.NewHeatService()
	config := flightmechanics.HeatConfig{Calibration: c.calibration}
	for _, d := range c.distancesLY {
		heat := svc.CalculateJumpHeat(c.totalMassKG, d, c.hullMassKG, config)
		c.heatProj = append(c.heatProj, flightmechanics.HopHeatProjection{HopHeat: heat})
	}
	return nil
}

func (c *flightMechanicsContext) hopShouldProduceApproximatelyHeat(hopNum int, expected, tolerance float64) error {
	if hopNum < 1 || hopNum > len(c.heatProj) {
		return fmt.Errorf("hop %d does not exist", hopNum)
	}
	got := c.heatProj[hopNum-1].HopHeat
	return approxEqual(fmt.Sprintf("hop %d heat", hopNum), got, expected, tolerance)
}

func approxEqual(label string, got, expected, tolerance float64) error {
	diff := got - expected
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return fmt.Errorf("%s: expected approximately %v (tolerance %v), got %v", label, expected, tolerance, got)
	}
	return nil
}

// InitializeFlightMechanicsScenarios registers the fuel/heat projection
// feature steps.
func InitializeFlightMechanicsScenarios(sc *godog.ScenarioContext) {
	fmCtx := &flightMechanicsContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		fmCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the Reflex loadout with (\d+(?:\.\d+)?) fuel units and (\d+(?:\.\d+)?) kg of cargo$`, fmCtx.theReflexLoadoutWithFuelAndCargo)
	sc.Step(`^the hop distances are (\d+(?:\.\d+)?), (\d+(?:\.\d+)?) and (\d+(?:\.\d+)?) light-years$`, fmCtx.theHopDistancesAreLightYears)
	sc.Step(`^I project route fuel with quality (\d+(?:\.\d+)?) and (static|dynamic) mass$`, fmCtx.iProjectRouteFuelWithQualityAndMassMode)
	sc.Step(`^the first hop fuel cost should be approximately (\d+(?:\.\d+)?) within ([0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)$`, fmCtx.theFirstHopFuelCostShouldBeApproximately)
	sc.Step(`^the final cumulative fuel should be approximately (\d+(?:\.\d+)?) within ([0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)$`, fmCtx.theFinalCumulativeFuelShouldBeApproximately)
	sc.Step(`^the final remaining fuel should be approximately (\d+(?:\.\d+)?) within ([0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)$`, fmCtx.theFinalRemainingFuelShouldBeApproximately)
	sc.Step(`^the dynamic cumulative fuel should be less than the static cumulative fuel of (\d+(?:\.\d+)?)$`, fmCtx.dynamicCumulativeShouldBeLessThanStatic)
	sc.Step(`^total mass (\d+(?:\.\d+)?) kg, hull mass (\d+(?:\.\d+)?) kg and calibration (\d+(?:\.\d+)?)$`, fmCtx.theTotalMassIsKgAndHullMassIsKgAndCalibrationIs)
	sc.Step(`^I calculate the jump heat for each hop$`, fmCtx.iCalculateTheJumpHeatForEachHop)
	sc.Step(`^hop (\d+) should produce approximately (\d+(?:\.\d+)?) heat within (\d+(?:\.\d+)?)$`, fmCtx.hopShouldProduceApproximatelyHeat)
}
