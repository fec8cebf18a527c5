package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontierlabs/evefrontier/internal/infrastructure/config"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
)

// NewShipsCommand creates the ships command with subcommands.
func NewShipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ships",
		Short: "Inspect the ship attribute catalog",
	}

	cmd.AddCommand(newShipsListCommand())

	return cmd
}

func newShipsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ships in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			catalog, err := shipcatalog.FromPath(cfg.ShipCatalog.Path)
			if err != nil {
				return fmt.Errorf("loading ship catalog: %w", err)
			}

			fmt.Printf("%-16s %14s %12s %14s %14s\n", "Name", "Mass (kg)", "Spec. heat", "Fuel cap.", "Cargo cap.")
			for _, ship := range catalog.ShipsSorted() {
				fmt.Printf("%-16s %14.0f %12.4f %14.1f %14.1f\n",
					ship.Name, ship.BaseMassKG, ship.SpecificHeat, ship.FuelCapacity, ship.CargoCapacity)
			}

			return nil
		},
	}
}
