package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cucumber/godog"

	"github.com/frontierlabs/evefrontier/internal/spatial"
)

type spatialScenarioContext struct {
	dir       string
	dbPath    string
	indexPath string
	index     *spatial.SpatialIndex
	freshness spatial.FreshnessResult
	loaded    *spatial.SpatialIndex
}

func (c *spatialScenarioContext) reset() {
	if c.dir != "" {
		os.RemoveAll(c.dir)
	}
	c.dir = ""
	c.dbPath = ""
	c.indexPath = ""
	c.index = nil
	c.freshness = spatial.Fresh
	c.loaded = nil
}

func (c *spatialScenarioContext) aDatasetFileAndAV2IndexBuiltFromIt() error {
	dir, err := os.MkdirTemp("", "evefrontier-spatial-bdd")
	if err != nil {
		return err
	}
	c.dir = dir
	c.dbPath = filepath.Join(dir, "static_data.db")
	c.indexPath = filepath.Join(dir, "spatial_index.bin")

	if err := os.WriteFile(c.dbPath, []byte("synthetic dataset contents for checksum purposes"), 0o644); err != nil {
		return err
	}

	checksum, err := spatial.ComputeDatasetChecksum(c.dbPath)
	if err != nil {
		return err
	}

	points := []spatial.Point{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 10, Y: 0, Z: 0},
		{ID: 3, X: 30, Y: 0, Z: 0},
	}
	idx := spatial.BuildWithMetadata(points, spatial.DatasetMetadata{Checksum: checksum, ReleaseTag: "latest"})
	c.index = idx

	if err := idx.Save(c.indexPath); err != nil {
		return err
	}
	return nil
}

func (c *spatialScenarioContext) iMutateOneByteOfTheDatasetFile() error {
	data, err := os.ReadFile(c.dbPath)
	if err != nil {
		return err
	}
	data[0] ^= 0xFF
	return os.WriteFile(c.dbPath, data, 0o644)
}

func (c *spatialScenarioContext) iReplaceTheIndexWithAPlainV1File() error {
	points := []spatial.Point{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 10, Y: 0, Z: 0},
		{ID: 3, X: 30, Y: 0, Z: 0},
	}
	idx := spatial.Build(points)
	c.index = idx
	return idx.Save(c.indexPath)
}

func (c *spatialScenarioContext) iVerifyFreshness() error {
	result, err := spatial.VerifyFreshness(c.indexPath, c.dbPath)
	if err != nil {
		return err
	}
	c.freshness = result
	return nil
}

func (c *spatialScenarioContext) freshnessShouldBe(expected string) error {
	if c.freshness.String() != expected {
		return fmt.Errorf("expected freshness %q, got %q", expected, c.freshness.String())
	}
	return nil
}

func (c *spatialScenarioContext) nearestShouldReturnInAscendingDistanceOrder() error {
	loaded, _, err := spatial.Load(c.indexPath)
	if err != nil {
		return err
	}
	hits := loaded.Nearest(0, 0, 0, 3)
	if len(hits) != 3 {
		return fmt.Errorf("expected 3 hits, got %d", len(hits))
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].Distance < hits[i-1].Distance {
			return fmt.Errorf("hits not sorted ascending: %v", hits)
		}
	}
	if hits[0].ID != 1 || hits[1].ID != 2 || hits[2].ID != 3 {
		return fmt.Errorf("unexpected nearest ordering: %v", hits)
	}
	return nil
}

// InitializeSpatialIndexScenarios registers the spatial index freshness
// feature steps.
func InitializeSpatialIndexScenarios(sc *godog.ScenarioContext) {
	spatialCtx := &spatialScenarioContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		spatialCtx.reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		spatialCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a dataset file and a v2 index built from it$`, spatialCtx.aDatasetFileAndAV2IndexBuiltFromIt)
	sc.Step(`^I mutate one byte of the dataset file$`, spatialCtx.iMutateOneByteOfTheDatasetFile)
	sc.Step(`^I replace the index with a plain v1 file$`, spatialCtx.iReplaceTheIndexWithAPlainV1File)
	sc.Step(`^I verify freshness$`, spatialCtx.iVerifyFreshness)
	sc.Step(`^freshness should be "([^"]*)"$`, spatialCtx.freshnessShouldBe)
	sc.Step(`^nearest should return hits in ascending distance order$`, spatialCtx.nearestShouldReturnInAscendingDistanceOrder)
}
