package main

import (
	"context"
	"log"

	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/database"
)

// setup creates the configured database when missing and applies migrations
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	ctx := context.Background()

	created, err := database.EnsureDatabase(ctx, cfg.GetAdminConnString(), cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	if created {
		log.Printf("Database %s created.", cfg.DBName)
	} else {
		log.Printf("Database %s already exists.", cfg.DBName)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	applied, err := database.Migrate(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Printf("Migration completed successfully (%d applied).", applied)
}
