package metrics

import (
	"context"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type == event.EquipmentSynced {
		payload, err := event.DecodePayload[event.EquipmentSyncedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		CatalogItemsSynced.WithLabelValues(SyncActionInserted).Add(float64(payload.Inserted))
		CatalogItemsSynced.WithLabelValues(SyncActionUpdated).Add(float64(payload.Updated))
		CatalogItemsSynced.WithLabelValues(SyncActionSkipped).Add(float64(payload.Skipped))
		CatalogEdgesSynced.Add(float64(payload.EdgesWritten))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
