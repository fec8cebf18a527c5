package config

// DatasetConfig holds the configuration for locating the starmap SQLite
// dataset. Resolution itself (override vs. environment variable vs.
// download-not-implemented) is handled by pkg/dataset.EnsureDataset.
type DatasetConfig struct {
	// Explicit path override. Empty means fall back to
	// EVEFRONTIER_DATASET_SOURCE, then to an unimplemented download.
	Path string `mapstructure:"path"`

	// Dataset release tag to resolve when no override is set. Empty
	// means "latest".
	Release string `mapstructure:"release"`
}

// ShipCatalogConfig points at the ship attributes CSV.
type ShipCatalogConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SpatialIndexConfig controls the persisted KD-tree index used for
// free-space jump queries.
type SpatialIndexConfig struct {
	// Path to the persisted index file. Empty means build one in
	// memory from the loaded starmap on demand.
	Path string `mapstructure:"path"`

	// RebuildIfStale rebuilds and re-persists the index when
	// VerifyFreshness reports anything other than Fresh.
	RebuildIfStale bool `mapstructure:"rebuild_if_stale"`
}
