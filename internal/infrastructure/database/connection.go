// Package database opens the read-only SQLite connections this module's
// loader (internal/starmap) reads a static dataset through.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenReadOnly opens a SQLite dataset file for reading. The dataset is a
// fixed, pre-generated snapshot: this module never writes to it, so the
// connection is opened in SQLite read-only mode (mode=ro) with query
// logging silenced.
func OpenReadOnly(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return db, nil
}

// Close closes the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
