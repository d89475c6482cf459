// Package database handles the user database connection and schema inspection.
//
// It wraps GORM to configure either an embedded SQLite file (the default, matching
// a single-node deployment) or a MySQL server, based on the application's configuration.
//
// # Connect
//
// Connect opens the database, tunes the connection pool for the chosen driver and
// verifies the connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the /health diagnostics, which report
// whether the users table carries every column the user model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "users", []string{"username"})
package database
