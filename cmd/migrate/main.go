package main

import (
	"parksys/internal/config" // Custom import path (Config)
	"parksys/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Run schema migration against PostgreSQL
	db.Migrate(cfg.DSN())
}
