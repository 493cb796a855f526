package main

import (
	"donation_platform/internal/config" // Custom import path (Config)
	"donation_platform/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Create the donors table and its unique indexes
	db.Migrate(cfg.DSN())
}
