package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontierlabs/evefrontier/internal/adapters/render"
	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/infrastructure/config"
	"github.com/frontierlabs/evefrontier/internal/routeplanner"
	"github.com/frontierlabs/evefrontier/internal/shipcatalog"
	"github.com/frontierlabs/evefrontier/internal/spatial"
	"github.com/frontierlabs/evefrontier/internal/starmap"
	"github.com/frontierlabs/evefrontier/pkg/dataset"
)

// NewRouteCommand creates the route command.
func NewRouteCommand() *cobra.Command {
	var (
		startName   string
		goalName    string
		algorithm   string
		shipName    string
		fuelUnits   float64
		cargoMassKG float64
		quality     float64
		calibration float64
		maxJumpLY   float64
		avoidGates  bool
		avoidCrit   bool
		search      bool
		renderMode  string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a route between two systems",
		Long: `Plan a route between two systems using the gate network, optionally
extended with free-space jumps bounded by --max-jump and a ship's fuel
and heat envelope.

Examples:
  evefrontier route --start "Y:170N" --goal BetaTest --algorithm a-star
  evefrontier route --start Jita --goal Amarr --ship Reflex --fuel-units 1750 --cargo-mass-kg 633006 --quality 10 --max-jump 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startName == "" || goalName == "" {
				return fmt.Errorf("--start and --goal are required")
			}

			cfg := config.LoadConfigOrDefault(configPath)

			dbPath, err := dataset.EnsureDataset(nilIfEmpty(cfg.Dataset.Path), dataset.ReleaseTag(cfg.Dataset.Release))
			if err != nil {
				return fmt.Errorf("resolving dataset: %w", err)
			}

			sm, err := starmap.Load(dbPath)
			if err != nil {
				return fmt.Errorf("loading starmap: %w", err)
			}

			var spatialIndex *spatial.SpatialIndex
			if maxJumpLY > 0 || !avoidGates {
				spatialIndex = loadOrBuildSpatialIndex(cfg, dbPath, sm)
			}

			planner := routeplanner.New(sm, spatialIndex)

			constraints, err := buildConstraints(shipName, fuelUnits, cargoMassKG, quality, calibration, maxJumpLY, avoidGates, avoidCrit)
			if err != nil {
				return err
			}

			algo, err := parseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			plan, err := planner.PlanRoute(routeplanner.RouteRequest{
				StartName:   startName,
				GoalName:    goalName,
				Algorithm:   algo,
				Constraints: constraints,
			})
			if err != nil {
				return fmt.Errorf("planning route: %w", err)
			}

			kind := routeplanner.OutputKindRoute
			if search {
				kind = routeplanner.OutputKindSearch
			}

			summary, err := routeplanner.FromPlan(kind, sm, plan, constraints)
			if err != nil {
				return fmt.Errorf("summarising route: %w", err)
			}

			mode, err := parseRenderMode(renderMode)
			if err != nil {
				return err
			}

			fmt.Print(render.Render(summary, mode))
			return nil
		},
	}

	cmd.Flags().StringVar(&startName, "start", "", "Starting system name (required)")
	cmd.Flags().StringVar(&goalName, "goal", "", "Destination system name (required)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "bfs", "Pathfinding algorithm: bfs, dijkstra, a-star")
	cmd.Flags().StringVar(&shipName, "ship", "", "Ship name from the catalog, for fuel/heat projections")
	cmd.Flags().Float64Var(&fuelUnits, "fuel-units", 0, "Fuel units carried, requires --ship")
	cmd.Flags().Float64Var(&cargoMassKG, "cargo-mass-kg", 0, "Cargo mass in kg, requires --ship")
	cmd.Flags().Float64Var(&quality, "quality", 1, "Fuel quality divisor")
	cmd.Flags().Float64Var(&calibration, "calibration", 1, "Heat calibration constant")
	cmd.Flags().Float64Var(&maxJumpLY, "max-jump", 0, "Maximum free-space jump range in light-years (0 disables jumps)")
	cmd.Flags().BoolVar(&avoidGates, "avoid-gates", false, "Never use gate connections")
	cmd.Flags().BoolVar(&avoidCrit, "avoid-critical", false, "Reject jumps that would push heat into the critical band; requires --ship and fuel/cargo")
	cmd.Flags().BoolVar(&search, "search", false, "Render as an exploratory search rather than a planned route")
	cmd.Flags().StringVar(&renderMode, "render", "plain", "Output format: plain, rich, note")

	return cmd
}

func buildConstraints(shipName string, fuelUnits, cargoMassKG, quality, calibration, maxJumpLY float64, avoidGates, avoidCrit bool) (routeplanner.RouteConstraints, error) {
	constraints := routeplanner.RouteConstraints{
		AvoidGates:         avoidGates,
		AvoidCriticalState: avoidCrit,
	}
	if maxJumpLY > 0 {
		constraints.HasMaxJump = true
		constraints.MaxJumpLY = maxJumpLY
	}

	if shipName == "" {
		if avoidCrit {
			return constraints, fmt.Errorf("--avoid-critical requires --ship, --fuel-units and --cargo-mass-kg")
		}
		return constraints, nil
	}

	cfg := config.LoadConfigOrDefault(configPath)
	catalog, err := shipcatalog.FromPath(cfg.ShipCatalog.Path)
	if err != nil {
		return constraints, fmt.Errorf("loading ship catalog: %w", err)
	}
	ship, ok := catalog.Get(shipName)
	if !ok {
		return constraints, fmt.Errorf("unknown ship: %s", shipName)
	}
	loadout, err := shipcatalog.NewShipLoadout(ship, fuelUnits, cargoMassKG)
	if err != nil {
		return constraints, fmt.Errorf("building loadout: %w", err)
	}

	constraints.Ship = &ship
	constraints.Loadout = loadout
	constraints.FuelConfig = &flightmechanics.FuelConfig{Quality: quality, DynamicMass: true}
	constraints.HeatConfig = &flightmechanics.HeatConfig{Calibration: calibration}

	return constraints, nil
}

func parseAlgorithm(s string) (routeplanner.Algorithm, error) {
	switch s {
	case "bfs":
		return routeplanner.AlgorithmBFS, nil
	case "dijkstra":
		return routeplanner.AlgorithmDijkstra, nil
	case "a-star", "astar":
		return routeplanner.AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("unknown algorithm: %s (want bfs, dijkstra, a-star)", s)
	}
}

func parseRenderMode(s string) (render.Mode, error) {
	switch s {
	case "plain":
		return render.PlainText, nil
	case "rich":
		return render.RichText, nil
	case "note":
		return render.InGameNote, nil
	default:
		return 0, fmt.Errorf("unknown render mode: %s (want plain, rich, note)", s)
	}
}

func loadOrBuildSpatialIndex(cfg *config.Config, dbPath string, sm *starmap.Starmap) *spatial.SpatialIndex {
	if cfg.SpatialIndex.Path == "" {
		return spatial.BuildFromStarmap(sm)
	}

	freshness, err := spatial.VerifyFreshness(cfg.SpatialIndex.Path, dbPath)
	if err == nil && freshness == spatial.Fresh {
		if idx, _, loadErr := spatial.Load(cfg.SpatialIndex.Path); loadErr == nil {
			return idx
		}
	}

	idx := spatial.BuildFromStarmap(sm)
	if cfg.SpatialIndex.RebuildIfStale {
		_ = idx.Save(cfg.SpatialIndex.Path)
	}
	return idx
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
