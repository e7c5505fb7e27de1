package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/eventlog"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	// ItemCache is optional
	ItemCache *crafting.CachedRepository
}

// RegisterEventHandlers sets up all event subscribers:
// the metrics collector, the persistent event logger and, when caching is
// enabled, the item cache purge on catalog changes.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	if deps.ItemCache != nil {
		deps.ItemCache.Subscribe(deps.EventBus)
		slog.Info(LogMsgItemCacheSubscribed)
	}

	return nil
}
