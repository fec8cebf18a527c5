package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evefrontier",
		Short: "EVE Frontier offline route planner and flight-mechanics calculator",
		Long: `evefrontier plans gate and free-space routes across an offline starmap
snapshot, and projects the fuel and heat a ship would burn along the way.

Examples:
  evefrontier route --start "Y:170N" --goal BetaTest --algorithm a-star
  evefrontier route --start Jita --goal Amarr --ship Reflex --max-jump 20
  evefrontier ships list
  evefrontier index build --output docs/fixtures/spatial_index.bin`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Has no effect: no command reads this flag")

	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewShipsCommand())
	rootCmd.AddCommand(NewIndexCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
