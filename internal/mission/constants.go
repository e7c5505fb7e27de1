package mission

// MaxBulkSize caps the number of missions accepted in one bulk upsert
const MaxBulkSize = 500

// Error messages
const (
	ErrMsgEmptySlug            = "slug cannot be empty"
	ErrMsgEmptyBatch           = "no missions supplied"
	ErrMsgBatchTooLarge        = "too many missions in one request"
	ErrMsgInvalidFilter        = "difficulty range is inverted or offset is negative"
	ErrFmtDuplicateSlug        = "%w: mission '%s' appears more than once"
	ErrFmtDuplicateReward      = "%w: mission '%s' lists reward '%s' more than once"
	ErrFmtUnknownEquipment     = "%w: mission '%s' rewards unknown equipment '%s'"
	ErrFmtLookupEquipment      = "failed to look up equipment '%s': %w"
	ErrFmtUpsertFailed         = "failed to upsert missions: %w"
	ErrFmtDeleteFailed         = "failed to delete mission '%s': %w"
	ErrFmtPublishUpsertedEvent = "failed to publish mission upserted event: %w"
	ErrFmtPublishDeletedEvent  = "failed to publish mission deleted event: %w"
)

// Log messages
const (
	LogMsgMissionsUpserted = "Missions upserted"
	LogMsgMissionDeleted   = "Mission deleted"
)
