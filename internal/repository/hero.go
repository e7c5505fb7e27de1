package repository

import (
	"context"

	"github.com/osse101/Armory_Go/internal/domain"
)

// Hero defines the interface for hero template persistence
type Hero interface {
	GetHeroBySlug(ctx context.Context, slug string) (*domain.Hero, error)
	ListHeroes(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error)
	// BulkUpsertHeroes inserts or updates by slug and returns the rows written
	BulkUpsertHeroes(ctx context.Context, heroes []domain.Hero) (int, error)
	DeleteHero(ctx context.Context, slug string) error
}
