// Package database handles the connection to the billing database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database hosting the
// routing reference tables (master data and per-vendor sheet limits). It is
// agnostic to the schema itself; table mappings live in the feature packages
// that own them.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
