package config

import "time"

const (
	// Configuration file paths
	ConfigPathEquipment       = "configs/equipment/equipment.json"
	ConfigPathEquipmentSchema = "configs/schemas/equipment.schema.json"
)

// Defaults applied by Load when a variable is not set
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "armory"
	DefaultVersion     = "dev"

	DefaultRateLimitRequests = 1000
	DefaultRateLimitWindow   = 5 * time.Minute

	DefaultDBName            = "armory"
	AdminDBName              = "postgres"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultItemCacheSize  = 2048
	DefaultItemCacheTTL   = 10 * time.Minute
	DefaultResolveTimeout = 5 * time.Second

	DefaultEventRetentionDays   = 30
	DefaultEventCleanupInterval = 24 * time.Hour
)
