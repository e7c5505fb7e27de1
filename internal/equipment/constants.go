package equipment

// ==================== Configuration ====================

const (
	// ConfigFileName keys the catalog in sync_metadata
	ConfigFileName = "equipment.json"

	// DefaultSchemaPath is used when no schema path is configured
	DefaultSchemaPath = "configs/schemas/equipment.schema.json"

	// SyncJobName identifies the periodic catalog sync in worker logs
	SyncJobName = "equipment_sync"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read equipment config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse equipment config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed    = "failed to check if file changed: %w"
	ErrMsgGetExistingItemsFailed   = "failed to get existing equipment: %w"
	ErrMsgGetExistingEdgesFailed   = "failed to get existing requirements: %w"
	ErrMsgWriteCatalogFailed       = "failed to write equipment catalog: %w"
	ErrMsgPublishSyncedFailedFmt   = "failed to publish equipment synced event: %w"
	ErrMsgCatalogLoadFailedFmt     = "failed to load equipment catalog: %w"
	ErrMsgCatalogValidateFailedFmt = "equipment catalog is invalid: %w"
	ErrMsgDeleteEquipmentFailedFmt = "failed to delete equipment '%s': %w"
	ErrMsgPublishDeletedFailedFmt  = "failed to publish equipment deleted event: %w"
)

// Request error messages
const (
	ErrMsgEmptySlug     = "slug cannot be empty"
	ErrMsgInvalidFilter = "unknown slot or rarity, or negative offset"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexNoSlug    = "%w: item at index %d has no slug and a name that yields none"
	ErrFmtItemNegativeGold     = "%w: item '%s' has negative craft_gold_cost"
	ErrFmtItemNegativeValue    = "%w: item '%s' has negative sell_value"
	ErrFmtItemNegativeTier     = "%w: item '%s' has negative tier"
	ErrFmtItemInvalidRarity    = "%w: item '%s' has unknown rarity '%s'"
	ErrFmtItemInvalidSlot      = "%w: item '%s' has unknown slot '%s'"
	ErrFmtRequirementQuantity  = "%w: item '%s' requires %d of '%s'"
	ErrFmtRequirementUnknown   = "%w: item '%s' requires unknown item '%s'"
	ErrFmtRequirementSelf      = "%w: item '%s' requires itself"
	ErrFmtRequirementDuplicate = "%w: item '%s' lists '%s' more than once"
	ErrFmtRecipeWithoutGold    = "%w: item '%s' has requirements but no craft_gold_cost"
	ErrFmtRequirementCycle     = "%w: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Equipment config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Equipment sync completed"
	LogMsgUpdatedItem          = "Updated equipment"
	LogMsgInsertedItem         = "Inserted equipment"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgSyncJobFailed        = "Equipment sync job failed"
	LogMsgEquipmentDeleted     = "Equipment deleted"
)
