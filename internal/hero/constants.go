package hero

// MaxBulkSize caps the number of heroes accepted in one bulk upsert
const MaxBulkSize = 500

// Error messages
const (
	ErrMsgEmptySlug            = "slug cannot be empty"
	ErrMsgEmptyBatch           = "no heroes supplied"
	ErrMsgBatchTooLarge        = "too many heroes in one request"
	ErrMsgInvalidFilter        = "unknown rarity or negative offset"
	ErrFmtDuplicateSlug        = "%w: hero '%s' appears more than once"
	ErrFmtUnknownEquipment     = "%w: hero '%s' references unknown equipment '%s'"
	ErrFmtLookupEquipment      = "failed to look up equipment '%s': %w"
	ErrFmtUpsertFailed         = "failed to upsert heroes: %w"
	ErrFmtDeleteFailed         = "failed to delete hero '%s': %w"
	ErrFmtPublishUpsertedEvent = "failed to publish hero upserted event: %w"
	ErrFmtPublishDeletedEvent  = "failed to publish hero deleted event: %w"
)

// Log messages
const (
	LogMsgHeroesUpserted = "Heroes upserted"
	LogMsgHeroDeleted    = "Hero deleted"
)
