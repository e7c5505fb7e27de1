package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/database"
)

// reset drops the configured database, recreates it and applies migrations.
// It refuses to run against production unless -force is given.
func main() {
	force := flag.Bool("force", false, "allow resetting a production database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if (cfg.Environment == "prod" || cfg.Environment == "production") && !*force {
		log.Fatalf("Refusing to reset %s in %s; pass -force to continue", cfg.DBName, cfg.Environment)
	}
	ctx := context.Background()

	log.Printf("Dropping database %s if it exists...", cfg.DBName)
	if err := database.DropDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	if _, err := database.EnsureDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if _, err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Printf("Database %s reset successfully.", cfg.DBName)
}
