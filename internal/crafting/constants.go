package crafting

// ==================== Operation Labels ====================

// Operation names used for metrics labels and log fields
const (
	OperationRawCost       = "raw_cost"
	OperationFinalProducts = "final_products"
	OperationRecipe        = "recipe"
)

// Outcome labels for resolution metrics
const (
	OutcomeSuccess      = "success"
	OutcomeNotCraftable = "not_craftable"
	OutcomeError        = "error"
)

// ==================== Error Messages ====================

const (
	ErrMsgNilItem             = "item is nil"
	ErrMsgEmptySlug           = "slug cannot be empty"
	ErrMsgGetItemFailedFmt    = "failed to get item '%s': %w"
	ErrMsgGetRequiredItemsFmt = "failed to get required items of '%s': %w"
	ErrMsgGetRequirersFmt     = "failed to get requirers of '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgResolveRawCostCalled    = "ResolveRawCost called"
	LogMsgRawCostResolved         = "Raw cost resolved"
	LogMsgItemNotCraftable        = "Item has no recipe, nothing to flatten"
	LogMsgFindFinalProductsCalled = "FindFinalProducts called"
	LogMsgFinalProductsFound      = "Final products found"
	LogMsgDanglingEdgeSkipped     = "Requirement points to a missing item, skipping"
	LogMsgCycleTruncated          = "Requirement cycle detected, truncating branch"
	LogMsgCacheSubscribed         = "Equipment cache subscribed to catalog events"
	LogMsgCachePurged             = "Equipment cache purged"
)
