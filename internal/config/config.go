package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	ServiceName string
	Version     string

	// HTTP edge
	TrustedProxies    []string
	RateLimitRequests int           `validate:"min=0"`
	RateLimitWindow   time.Duration `validate:"gt=0"`

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Crafting resolver
	ItemCacheSize  int `validate:"min=0"`
	ItemCacheTTL   time.Duration
	ResolveTimeout time.Duration `validate:"gt=0"`

	// Catalog and event log
	EquipmentConfigPath  string `validate:"required"`
	EquipmentSchemaPath  string `validate:"required"`
	EquipmentSyncPeriod  time.Duration
	EventRetentionDays   int           `validate:"min=1"`
	EventCleanupInterval time.Duration `validate:"gt=0"`

	// Event publishing
	EventMaxRetries     int `validate:"min=0"`
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		TrustedProxies:    getEnvAsList("TRUSTED_PROXIES"),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		ItemCacheSize:  getEnvAsInt("ITEM_CACHE_SIZE", DefaultItemCacheSize),
		ItemCacheTTL:   getEnvAsDuration("ITEM_CACHE_TTL", DefaultItemCacheTTL),
		ResolveTimeout: getEnvAsDuration("RESOLVE_TIMEOUT", DefaultResolveTimeout),

		EquipmentConfigPath:  getEnv("EQUIPMENT_CONFIG_PATH", ConfigPathEquipment),
		EquipmentSchemaPath:  getEnv("EQUIPMENT_SCHEMA_PATH", ConfigPathEquipmentSchema),
		EquipmentSyncPeriod:  getEnvAsDuration("EQUIPMENT_SYNC_INTERVAL", 0),
		EventRetentionDays:   getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
		EventCleanupInterval: getEnvAsDuration("EVENT_CLEANUP_INTERVAL", DefaultEventCleanupInterval),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 0),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 0),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate checks value ranges that Load leaves to the caller, such as the
// port being usable.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when
// unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a time.ParseDuration string, falling back to the
// default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// GetAdminConnString points at the maintenance database on the same server,
// used to create DBName when it does not exist yet
func (c *Config) GetAdminConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		AdminDBName,
	)
}
