package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontierlabs/evefrontier/internal/infrastructure/config"
	"github.com/frontierlabs/evefrontier/internal/spatial"
	"github.com/frontierlabs/evefrontier/internal/starmap"
	"github.com/frontierlabs/evefrontier/pkg/dataset"
)

// NewIndexCommand creates the index command with subcommands.
func NewIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build and verify the persisted spatial index",
	}

	cmd.AddCommand(newIndexBuildCommand())
	cmd.AddCommand(newIndexVerifyCommand())

	return cmd
}

func newIndexBuildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a spatial index from the dataset and persist it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			dbPath, err := dataset.EnsureDataset(nilIfEmpty(cfg.Dataset.Path), dataset.ReleaseTag(cfg.Dataset.Release))
			if err != nil {
				return fmt.Errorf("resolving dataset: %w", err)
			}

			sm, err := starmap.Load(dbPath)
			if err != nil {
				return fmt.Errorf("loading starmap: %w", err)
			}

			checksum, err := spatial.ComputeDatasetChecksum(dbPath)
			if err != nil {
				return fmt.Errorf("computing dataset checksum: %w", err)
			}
			meta := spatial.DatasetMetadata{
				Checksum:   checksum,
				ReleaseTag: spatial.ReadReleaseTag(dbPath),
			}

			idx := spatial.BuildFromStarmapWithMetadata(sm, meta)

			if output == "" {
				output = cfg.SpatialIndex.Path
			}
			if output == "" {
				return fmt.Errorf("no output path: pass --output or set spatial_index.path")
			}

			if err := idx.Save(output); err != nil {
				return fmt.Errorf("saving index: %w", err)
			}

			fmt.Printf("Built spatial index with %d points -> %s\n", idx.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Path to write the persisted index (defaults to spatial_index.path)")
	return cmd
}

func newIndexVerifyCommand() *cobra.Command {
	var indexPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a persisted index's freshness against the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			dbPath, err := dataset.EnsureDataset(nilIfEmpty(cfg.Dataset.Path), dataset.ReleaseTag(cfg.Dataset.Release))
			if err != nil {
				return fmt.Errorf("resolving dataset: %w", err)
			}

			if indexPath == "" {
				indexPath = cfg.SpatialIndex.Path
			}

			result, err := spatial.VerifyFreshness(indexPath, dbPath)
			if err != nil {
				return fmt.Errorf("verifying index: %w", err)
			}

			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "Path to the persisted index (defaults to spatial_index.path)")
	return cmd
}
