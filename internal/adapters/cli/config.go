package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontierlabs/evefrontier/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect resolved configuration",
		Long: `Inspect the configuration evefrontier resolves from (in priority order)
environment variables, a config file, and built-in defaults.

Example:
  evefrontier config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Dataset:")
			fmt.Printf("  Path override:    %s\n", orNone(cfg.Dataset.Path))
			fmt.Printf("  Release:          %s\n", cfg.Dataset.Release)

			fmt.Println("\nShip catalog:")
			fmt.Printf("  Path:             %s\n", cfg.ShipCatalog.Path)

			fmt.Println("\nSpatial index:")
			fmt.Printf("  Path:             %s\n", orNone(cfg.SpatialIndex.Path))
			fmt.Printf("  Rebuild if stale: %t\n", cfg.SpatialIndex.RebuildIfStale)

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
