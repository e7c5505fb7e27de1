package handler

import "time"

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	// Query parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"
	ErrMsgInvalidLimit     = "Invalid 'limit' (must be 1-1000)"
	ErrMsgInvalidOffset    = "Invalid 'offset' (must be a non-negative integer)"
	ErrMsgInvalidCraftable = "Invalid 'craftable' (must be true or false)"
	ErrMsgInvalidIntParam  = "Invalid '%s' (must be an integer)"
	ErrMsgInvalidSince     = "Invalid 'since' timestamp format (use RFC3339)"
	ErrMsgInvalidUntil     = "Invalid 'until' timestamp format (use RFC3339)"

	// Health messages
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Success messages for API responses
const (
	MsgEquipmentDeleted = "Equipment deleted"
	MsgHeroDeleted      = "Hero deleted"
	MsgMissionDeleted   = "Mission deleted"
	MsgCatalogUnchanged = "Equipment catalog unchanged"
	MsgCatalogSynced    = "Equipment catalog synced"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeRequestFailed  = "Failed to decode request"
	LogMsgRequestDecoded       = "Request decoded"
	LogMsgReadinessFailed      = "Readiness check failed"
)

// Operation names used when logging service failures
const (
	OpListEquipment     = "List equipment"
	OpGetEquipment      = "Get equipment"
	OpDeleteEquipment   = "Delete equipment"
	OpGetRecipe         = "Get recipe"
	OpResolveRawCost    = "Resolve raw cost"
	OpFindFinalProducts = "Find final products"
	OpSyncCatalog       = "Sync equipment catalog"
	OpListHeroes        = "List heroes"
	OpGetHero           = "Get hero"
	OpUpsertHeroes      = "Upsert heroes"
	OpDeleteHero        = "Delete hero"
	OpListMissions      = "List missions"
	OpGetMission        = "Get mission"
	OpUpsertMissions    = "Upsert missions"
	OpDeleteMission     = "Delete mission"
	OpGetEvents         = "Get events"
)

const (
	// maxEchoedErrorLength bounds input error text returned to callers
	maxEchoedErrorLength = 200

	// defaultEventsLimit is used when the events query has no limit
	defaultEventsLimit = 50

	// readinessTimeout bounds the database ping of /readyz
	readinessTimeout = 2 * time.Second
)
