package hero

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// EquipmentLookup resolves equipment referenced by hero loadouts
type EquipmentLookup interface {
	GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error)
}

// Service manages hero templates
type Service interface {
	GetHero(ctx context.Context, slug string) (*domain.Hero, error)
	ListHeroes(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error)
	// BulkUpsertHeroes writes the batch atomically and returns the rows written.
	// Every default_equipment slug must exist in the equipment catalog.
	BulkUpsertHeroes(ctx context.Context, heroes []domain.Hero) (int, error)
	DeleteHero(ctx context.Context, slug string) error
}

type service struct {
	repo      repository.Hero
	equipment EquipmentLookup
	bus       event.Bus
}

// NewService creates a hero service. bus may be nil.
func NewService(repo repository.Hero, equipment EquipmentLookup, bus event.Bus) Service {
	return &service{repo: repo, equipment: equipment, bus: bus}
}

func (s *service) GetHero(ctx context.Context, slug string) (*domain.Hero, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	return s.repo.GetHeroBySlug(ctx, slug)
}

func (s *service) ListHeroes(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error) {
	if !filter.Rarity.IsValid() || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidFilter)
	}
	heroes, err := s.repo.ListHeroes(ctx, filter)
	if err != nil {
		return nil, err
	}
	if heroes == nil {
		heroes = []domain.Hero{}
	}
	return heroes, nil
}

func (s *service) BulkUpsertHeroes(ctx context.Context, heroes []domain.Hero) (int, error) {
	if len(heroes) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyBatch)
	}
	if len(heroes) > MaxBulkSize {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBatchTooLarge)
	}
	if err := s.checkBatch(ctx, heroes); err != nil {
		return 0, err
	}

	written, err := s.repo.BulkUpsertHeroes(ctx, heroes)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtUpsertFailed, err)
	}

	slugs := make([]string, len(heroes))
	for i := range heroes {
		slugs[i] = heroes[i].Slug
	}
	logger.FromContext(ctx).Info(LogMsgHeroesUpserted, "count", written)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewHeroUpsertedEvent(slugs)); err != nil {
			return written, fmt.Errorf(ErrFmtPublishUpsertedEvent, err)
		}
	}
	return written, nil
}

// checkBatch rejects duplicate slugs and loadouts naming unknown equipment.
// Each distinct equipment slug is looked up once.
func (s *service) checkBatch(ctx context.Context, heroes []domain.Hero) error {
	seen := make(map[string]bool, len(heroes))
	known := make(map[string]bool)
	for _, h := range heroes {
		if seen[h.Slug] {
			return fmt.Errorf(ErrFmtDuplicateSlug, domain.ErrInvalidInput, h.Slug)
		}
		seen[h.Slug] = true

		for _, slug := range h.DefaultEquipment {
			if known[slug] {
				continue
			}
			if _, err := s.equipment.GetEquipmentBySlug(ctx, slug); err != nil {
				if errors.Is(err, domain.ErrItemNotFound) {
					return fmt.Errorf(ErrFmtUnknownEquipment, domain.ErrInvalidInput, h.Slug, slug)
				}
				return fmt.Errorf(ErrFmtLookupEquipment, slug, err)
			}
			known[slug] = true
		}
	}
	return nil
}

func (s *service) DeleteHero(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	if err := s.repo.DeleteHero(ctx, slug); err != nil {
		return fmt.Errorf(ErrFmtDeleteFailed, slug, err)
	}
	logger.FromContext(ctx).Info(LogMsgHeroDeleted, "slug", slug)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewHeroDeletedEvent(slug)); err != nil {
			return fmt.Errorf(ErrFmtPublishDeletedEvent, err)
		}
	}
	return nil
}
