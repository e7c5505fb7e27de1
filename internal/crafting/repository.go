package crafting

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Repository is the read side the resolver needs from the equipment store.
// GetEquipmentBySlug must return an error wrapping domain.ErrItemNotFound for
// unknown slugs; any other error is treated as a store failure.
type Repository interface {
	GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error)
	GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error)
	GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error)
}
