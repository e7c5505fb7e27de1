package mission

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/repository"
)

// EquipmentLookup resolves equipment granted as mission rewards
type EquipmentLookup interface {
	GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error)
}

// Service manages missions and their reward tables
type Service interface {
	GetMission(ctx context.Context, slug string) (*domain.Mission, error)
	ListMissions(ctx context.Context, filter domain.MissionFilter) ([]domain.Mission, error)
	// BulkUpsertMissions writes the batch atomically and returns the rows written.
	// Every reward must name existing equipment.
	BulkUpsertMissions(ctx context.Context, missions []domain.Mission) (int, error)
	DeleteMission(ctx context.Context, slug string) error
}

type service struct {
	repo      repository.Mission
	equipment EquipmentLookup
	bus       event.Bus
}

// NewService creates a mission service. bus may be nil.
func NewService(repo repository.Mission, equipment EquipmentLookup, bus event.Bus) Service {
	return &service{repo: repo, equipment: equipment, bus: bus}
}

func (s *service) GetMission(ctx context.Context, slug string) (*domain.Mission, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	return s.repo.GetMissionBySlug(ctx, slug)
}

func (s *service) ListMissions(ctx context.Context, filter domain.MissionFilter) ([]domain.Mission, error) {
	inverted := filter.MinDifficulty > 0 && filter.MaxDifficulty > 0 && filter.MinDifficulty > filter.MaxDifficulty
	if inverted || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidFilter)
	}
	missions, err := s.repo.ListMissions(ctx, filter)
	if err != nil {
		return nil, err
	}
	if missions == nil {
		missions = []domain.Mission{}
	}
	return missions, nil
}

func (s *service) BulkUpsertMissions(ctx context.Context, missions []domain.Mission) (int, error) {
	if len(missions) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyBatch)
	}
	if len(missions) > MaxBulkSize {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBatchTooLarge)
	}
	if err := s.checkBatch(ctx, missions); err != nil {
		return 0, err
	}

	written, err := s.repo.BulkUpsertMissions(ctx, missions)
	if err != nil {
		return 0, fmt.Errorf(ErrFmtUpsertFailed, err)
	}

	slugs := make([]string, len(missions))
	for i := range missions {
		slugs[i] = missions[i].Slug
	}
	logger.FromContext(ctx).Info(LogMsgMissionsUpserted, "count", written)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewMissionUpsertedEvent(slugs)); err != nil {
			return written, fmt.Errorf(ErrFmtPublishUpsertedEvent, err)
		}
	}
	return written, nil
}

func (s *service) checkBatch(ctx context.Context, missions []domain.Mission) error {
	seen := make(map[string]bool, len(missions))
	known := make(map[string]bool)
	for _, m := range missions {
		if seen[m.Slug] {
			return fmt.Errorf(ErrFmtDuplicateSlug, domain.ErrInvalidInput, m.Slug)
		}
		seen[m.Slug] = true

		rewarded := make(map[string]bool, len(m.RewardEquipment))
		for _, reward := range m.RewardEquipment {
			slug := reward.EquipmentSlug
			if rewarded[slug] {
				return fmt.Errorf(ErrFmtDuplicateReward, domain.ErrInvalidInput, m.Slug, slug)
			}
			rewarded[slug] = true

			if known[slug] {
				continue
			}
			if _, err := s.equipment.GetEquipmentBySlug(ctx, slug); err != nil {
				if errors.Is(err, domain.ErrItemNotFound) {
					return fmt.Errorf(ErrFmtUnknownEquipment, domain.ErrInvalidInput, m.Slug, slug)
				}
				return fmt.Errorf(ErrFmtLookupEquipment, slug, err)
			}
			known[slug] = true
		}
	}
	return nil
}

func (s *service) DeleteMission(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	if err := s.repo.DeleteMission(ctx, slug); err != nil {
		return fmt.Errorf(ErrFmtDeleteFailed, slug, err)
	}
	logger.FromContext(ctx).Info(LogMsgMissionDeleted, "slug", slug)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewMissionDeletedEvent(slug)); err != nil {
			return fmt.Errorf(ErrFmtPublishDeletedEvent, err)
		}
	}
	return nil
}
