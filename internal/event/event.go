package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Catalog and roster event types
const (
	EquipmentSynced  Type = "equipment.synced"
	EquipmentDeleted Type = "equipment.deleted"
	HeroUpserted     Type = "hero.upserted"
	HeroDeleted      Type = "hero.deleted"
	MissionUpserted  Type = "mission.upserted"
	MissionDeleted   Type = "mission.deleted"
)

// AllTypes lists every event type published by the application
func AllTypes() []Type {
	return []Type{
		EquipmentSynced,
		EquipmentDeleted,
		HeroUpserted,
		HeroDeleted,
		MissionUpserted,
		MissionDeleted,
	}
}

// Typed event payloads for type safety

// EquipmentSyncedPayloadV1 is the typed payload for catalog sync events
type EquipmentSyncedPayloadV1 struct {
	Inserted     int   `json:"inserted"`
	Updated      int   `json:"updated"`
	Skipped      int   `json:"skipped"`
	EdgesWritten int   `json:"edges_written"`
	Timestamp    int64 `json:"timestamp"`
}

// SlugPayloadV1 is the payload for events that concern a single record
type SlugPayloadV1 struct {
	Slug      string `json:"slug"`
	Timestamp int64  `json:"timestamp"`
}

// BulkUpsertPayloadV1 is the payload for hero and mission bulk writes
type BulkUpsertPayloadV1 struct {
	Slugs     []string `json:"slugs"`
	Count     int      `json:"count"`
	Timestamp int64    `json:"timestamp"`
}

// Type-safe event constructors

// NewEquipmentSyncedEvent creates a catalog sync event
func NewEquipmentSyncedEvent(inserted, updated, skipped, edgesWritten int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EquipmentSynced,
		Payload: EquipmentSyncedPayloadV1{
			Inserted:     inserted,
			Updated:      updated,
			Skipped:      skipped,
			EdgesWritten: edgesWritten,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewEquipmentDeletedEvent creates an event for a removed catalog item
func NewEquipmentDeletedEvent(slug string) Event {
	return newSlugEvent(EquipmentDeleted, slug)
}

// NewHeroDeletedEvent creates an event for a removed hero
func NewHeroDeletedEvent(slug string) Event {
	return newSlugEvent(HeroDeleted, slug)
}

// NewMissionDeletedEvent creates an event for a removed mission
func NewMissionDeletedEvent(slug string) Event {
	return newSlugEvent(MissionDeleted, slug)
}

// NewHeroUpsertedEvent creates an event for a bulk hero write
func NewHeroUpsertedEvent(slugs []string) Event {
	return newBulkEvent(HeroUpserted, slugs)
}

// NewMissionUpsertedEvent creates an event for a bulk mission write
func NewMissionUpsertedEvent(slugs []string) Event {
	return newBulkEvent(MissionUpserted, slugs)
}

func newSlugEvent(eventType Type, slug string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: SlugPayloadV1{
			Slug:      slug,
			Timestamp: time.Now().Unix(),
		},
	}
}

func newBulkEvent(eventType Type, slugs []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: BulkUpsertPayloadV1{
			Slugs:     slugs,
			Count:     len(slugs),
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// For now, we execute handlers synchronously.
	// In the future, or with configuration, we could dispatch these to a worker pool
	// or run them in goroutines.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
