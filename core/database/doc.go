// Package database handles the connection to the song database export.
//
// It provides a wrapper around GORM configured for the SQLite export file the
// upstream tooling produces. The export is the same data as the "complete"
// JSON dataset, just in database form; the catalog feature reads it through a
// dataset adapter when a path is configured.
//
// # Connect
//
// The Connect function opens the export read-only and verifies it with a ping.
// The connection is optional: a missing export degrades enrichment quality,
// it never stops the pipeline.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("database export unavailable", zap.Error(err))
//	}
package database
