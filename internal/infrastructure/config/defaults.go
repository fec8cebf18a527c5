package config

// SetDefaults sets default values for all configuration fields.
func SetDefaults(cfg *Config) {
	if cfg.Dataset.Release == "" {
		cfg.Dataset.Release = "latest"
	}

	if cfg.ShipCatalog.Path == "" {
		cfg.ShipCatalog.Path = "docs/fixtures/ships.csv"
	}

	if cfg.SpatialIndex.Path == "" {
		cfg.SpatialIndex.Path = "docs/fixtures/spatial_index.bin"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100 // MB
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28 // days
	}
}
