package eventlog

import (
	"context"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// GetEvents returns logged events matching filter
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent persists an event. Typed payloads are flattened to a JSON map.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var subject *string
	if slug, ok := payload[PayloadKeySlug].(string); ok && slug != "" {
		subject = &slug
	}

	metadata, _ := evt.Metadata.(map[string]interface{})

	if err := s.repo.LogEvent(ctx, string(evt.Type), subject, payload, metadata); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSubject, subject)
	return nil
}

// GetEvents returns logged events; the limit is clamped to MaxEventLimit
func (s *service) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultEventLimit
	case filter.Limit > MaxEventLimit:
		filter.Limit = MaxEventLimit
	}
	return s.repo.GetEvents(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
