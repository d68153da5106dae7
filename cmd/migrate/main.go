package main

import (
	"github.com/RAINBOBOBO/Warbler/internal/config" // Custom import path (Config)
	"github.com/RAINBOBOBO/Warbler/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration against MySQL
}
