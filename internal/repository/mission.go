package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Mission defines the interface for mission persistence
type Mission interface {
	GetMissionBySlug(ctx context.Context, slug string) (*domain.Mission, error)
	ListMissions(ctx context.Context, filter domain.MissionFilter) ([]domain.Mission, error)
	// BulkUpsertMissions inserts or updates by slug and returns the rows written
	BulkUpsertMissions(ctx context.Context, missions []domain.Mission) (int, error)
	DeleteMission(ctx context.Context, slug string) error
}
