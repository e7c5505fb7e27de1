package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/database/postgres"
	"github.com/osse101/Armory_Go/internal/eventlog"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Equipment repository.Equipment
	// ItemCache fronts Equipment for the resolver and for loadout checks
	ItemCache *crafting.CachedRepository
	Hero      repository.Hero
	Mission   repository.Mission
	EventLog  eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
// A zero ItemCacheSize leaves the resolver reading straight from Postgres.
func InitializeRepositories(dbPool *pgxpool.Pool, cfg *config.Config) *Repositories {
	equipmentRepo := postgres.NewEquipmentRepository(dbPool)

	repos := &Repositories{
		Equipment: equipmentRepo,
		Hero:      postgres.NewHeroRepository(dbPool),
		Mission:   postgres.NewMissionRepository(dbPool),
		EventLog:  postgres.NewEventLogRepository(dbPool),
	}
	if cfg.ItemCacheSize > 0 {
		repos.ItemCache = crafting.NewCachedRepository(equipmentRepo, cfg.ItemCacheSize, cfg.ItemCacheTTL)
	}
	return repos
}

// CraftingSource returns the graph store the resolver should read
func (r *Repositories) CraftingSource() crafting.Repository {
	if r.ItemCache != nil {
		return r.ItemCache
	}
	return r.Equipment
}
