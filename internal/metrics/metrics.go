package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Crafting Metrics
var (
	CraftingResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCraftingResolutions,
			Help:      HelpTextCraftingResolutions,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	CraftingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameCraftingDuration,
			Help:      HelpTextCraftingDuration,
			Buckets:   ResolveLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	CraftingDanglingEdges = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCraftingDanglingEdges,
			Help:      HelpTextCraftingDanglingEdges,
		},
	)

	CraftingCyclesTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCraftingCyclesTruncated,
			Help:      HelpTextCraftingCyclesTruncated,
		},
	)

	ItemCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemCacheRequests,
			Help:      HelpTextItemCacheRequests,
		},
		[]string{LabelResult},
	)
)

// Catalog Metrics
var (
	CatalogSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogSyncs,
			Help:      HelpTextCatalogSyncs,
		},
		[]string{LabelResult},
	)

	CatalogItemsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogItemsSynced,
			Help:      HelpTextCatalogItemsSynced,
		},
		[]string{LabelAction},
	)

	CatalogEdgesSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogEdgesSynced,
			Help:      HelpTextCatalogEdgesSynced,
		},
	)
)
