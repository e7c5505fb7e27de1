package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Equipment defines the interface for equipment catalog persistence
type Equipment interface {
	// Graph reads used by the crafting resolver
	GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error)
	GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error)
	GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error)

	// Catalog reads
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	GetAllEquipment(ctx context.Context) ([]domain.Equipment, error)
	GetAllRequirements(ctx context.Context) ([]domain.RequirementEdge, error)

	// SyncEquipment upserts items and replaces the requirement list of every
	// parent present in requirements, all in one transaction. It returns the
	// number of edges written.
	SyncEquipment(ctx context.Context, items []domain.Equipment, requirements map[string][]domain.RequiredItem) (int, error)
	DeleteEquipment(ctx context.Context, slug string) error

	SyncMetadata
}

// SyncMetadata tracks which version of a config file was last imported
type SyncMetadata interface {
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
