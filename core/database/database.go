package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite song database export referenced by the configuration.
// It returns a *gorm.DB connection or an error if the file is missing or
// unreadable. The export is a read-only enrichment source, so callers should
// treat a failed connection as a degraded state rather than a fatal one.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("no database export path configured")
	}

	// The export is produced by an external tool; an absent file is the common
	// failure mode and deserves a clear error before gorm creates an empty DB.
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("database export not found at %s: %w", cfg.Path, err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Suppress GORM logging for cleaner optional warnings in main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+"?mode=ro"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database export: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Single-file read source; no pooling needed beyond one connection.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database export: %w", err)
	}

	return db, nil
}
