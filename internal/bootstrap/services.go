package bootstrap

import (
	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/eventlog"
	"github.com/osse101/Armory_Go/internal/hero"
	"github.com/osse101/Armory_Go/internal/mission"
	"github.com/osse101/Armory_Go/internal/server"
)

// InitializeServices builds every domain service. Services publish through
// bus, which should be the resilient publisher in production.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) server.Services {
	loader := equipment.NewLoader(cfg.EquipmentSchemaPath)
	lookup := repos.CraftingSource()

	return server.Services{
		Equipment: equipment.NewService(repos.Equipment, loader, bus, cfg.EquipmentConfigPath),
		Crafting:  crafting.NewService(lookup),
		Hero:      hero.NewService(repos.Hero, lookup, bus),
		Mission:   mission.NewService(repos.Mission, lookup, bus),
		Eventlog:  eventlog.NewService(repos.EventLog),
	}
}
