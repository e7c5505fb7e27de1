package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToLoadMigrations    = "failed to load migrations"
	ErrMsgFailedToApplyMigrations   = "failed to apply migrations"
	ErrMsgFailedToReadSchemaVersion = "failed to read schema version"
	ErrMsgFailedToConnectAdmin      = "failed to connect to admin database"
	ErrMsgFailedToCheckDatabase     = "failed to check if database exists"
	ErrMsgFailedToCreateDatabase    = "failed to create database"
	ErrMsgFailedToDropDatabase      = "failed to drop database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgSchemaUpToDate                  = "Database schema up to date"
	LogMsgDatabaseCreated                 = "Database created"
	LogMsgDatabaseDropped                 = "Database dropped"
	LogMsgTerminateSessionsFailed         = "Failed to terminate open sessions"
)
