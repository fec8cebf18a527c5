package pathengine

import (
	"testing"

	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
	"github.com/stretchr/testify/require"
)

type fuelFixture struct {
	ship    *shipcatalog.ShipAttributes
	loadout *shipcatalog.ShipLoadout
	config  *flightmechanics.FuelConfig
}

func mustFuelConfig(t *testing.T) fuelFixture {
	t.Helper()
	ship := shipcatalog.ShipAttributes{
		Name:          "Reflex",
		BaseMassKG:    10_000_000,
		SpecificHeat:  0.45,
		FuelCapacity:  1750,
		CargoCapacity: 633_006,
	}
	loadout, err := shipcatalog.NewShipLoadout(ship, 1750, 633_006)
	require.NoError(t, err)
	config := flightmechanics.FuelConfig{Quality: 10}
	return fuelFixture{ship: &ship, loadout: loadout, config: &config}
}
