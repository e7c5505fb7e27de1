package postgres

// UpsertBatchSize caps how many statements go into one pgx.Batch round trip
const UpsertBatchSize = 500

// JSONB defaults used when a Go value encodes to null
const (
	emptyJSONObject = "{}"
	emptyJSONArray  = "[]"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgBatchStatementFailed      = "batch statement failed at row"
	ErrMsgBatchCloseFailed          = "failed to close batch"
	ErrMsgFailedToMarshalJSON       = "failed to marshal jsonb column"
	ErrMsgFailedToUnmarshalJSON     = "failed to unmarshal jsonb column"
)

// Error Messages - Equipment Operations
const (
	ErrMsgFailedToGetEquipment        = "failed to get equipment"
	ErrMsgFailedToListEquipment       = "failed to list equipment"
	ErrMsgFailedToGetRequiredItems    = "failed to get required items"
	ErrMsgFailedToGetRequirers        = "failed to get requirers"
	ErrMsgFailedToGetRequirements     = "failed to get requirements"
	ErrMsgFailedToUpsertEquipment     = "failed to upsert equipment"
	ErrMsgFailedToReplaceRequirements = "failed to replace requirements"
	ErrMsgFailedToDeleteEquipment     = "failed to delete equipment"
	ErrMsgFailedToGetSyncMetadata     = "failed to get sync metadata"
	ErrMsgFailedToUpsertSyncMetadata  = "failed to upsert sync metadata"
)

// Error Messages - Hero and Mission Operations
const (
	ErrMsgFailedToGetHero        = "failed to get hero"
	ErrMsgFailedToListHeroes     = "failed to list heroes"
	ErrMsgFailedToUpsertHeroes   = "failed to upsert heroes"
	ErrMsgFailedToDeleteHero     = "failed to delete hero"
	ErrMsgFailedToGetMission     = "failed to get mission"
	ErrMsgFailedToListMissions   = "failed to list missions"
	ErrMsgFailedToUpsertMissions = "failed to upsert missions"
	ErrMsgFailedToDeleteMission  = "failed to delete mission"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent         = "failed to log event"
	ErrMsgFailedToQueryEvents      = "failed to query events"
	ErrMsgFailedToCleanupOldEvents = "failed to clean up old events"
)

// Log Messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
	LogMsgCatalogWritten = "Equipment catalog written"
)
