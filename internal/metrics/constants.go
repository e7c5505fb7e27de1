package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "armory"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Crafting metric names
const (
	MetricNameCraftingResolutions     = "crafting_resolutions_total"
	MetricNameCraftingDuration        = "crafting_resolve_duration_seconds"
	MetricNameCraftingDanglingEdges   = "crafting_dangling_edges_total"
	MetricNameCraftingCyclesTruncated = "crafting_cycles_truncated_total"
	MetricNameItemCacheRequests       = "item_cache_requests_total"
)

// Catalog metric names
const (
	MetricNameCatalogSyncs       = "catalog_syncs_total"
	MetricNameCatalogItemsSynced = "catalog_items_synced_total"
	MetricNameCatalogEdgesSynced = "catalog_edges_synced_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Crafting metric help text
const (
	HelpTextCraftingResolutions     = "Total number of crafting graph queries by operation and outcome"
	HelpTextCraftingDuration        = "Crafting graph query latency in seconds"
	HelpTextCraftingDanglingEdges   = "Requirement edges pointing at items missing from the catalog"
	HelpTextCraftingCyclesTruncated = "Branches cut short because a requirement cycle was detected"
	HelpTextItemCacheRequests       = "Equipment cache lookups by result"
)

// Catalog metric help text
const (
	HelpTextCatalogSyncs       = "Catalog sync runs by result"
	HelpTextCatalogItemsSynced = "Catalog items processed by sync, by action"
	HelpTextCatalogEdgesSynced = "Requirement edges written by catalog sync"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelAction    = "action"
)

// Label values
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"

	SyncResultSuccess = "success"
	SyncResultError   = "error"

	SyncActionInserted = "inserted"
	SyncActionUpdated  = "updated"
	SyncActionSkipped  = "skipped"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolveLatencyBuckets covers graph walks from in-cache (sub-millisecond)
// up to deep trees against a slow database.
var ResolveLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// UnmatchedRoute is used as the path label when no route pattern is available
const UnmatchedRoute = "unmatched"
