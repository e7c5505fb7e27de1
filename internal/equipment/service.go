package equipment

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
	"github.com/osse101/Armory_Go/internal/repository"
)

// Service manages the equipment catalog: importing the config file and
// reading or deleting records
type Service interface {
	// Sync loads, validates and writes the catalog file. force ignores the
	// unchanged-file shortcut.
	Sync(ctx context.Context, force bool) (*SyncResult, error)
	ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	GetEquipment(ctx context.Context, slug string) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, slug string) error
}

type service struct {
	repo       repository.Equipment
	loader     Loader
	bus        event.Bus
	configPath string

	// serialises Sync between the scheduler and the admin endpoint
	syncMu sync.Mutex
}

// NewService creates the catalog service. bus may be nil.
func NewService(repo repository.Equipment, loader Loader, bus event.Bus, configPath string) Service {
	return &service{
		repo:       repo,
		loader:     loader,
		bus:        bus,
		configPath: configPath,
	}
}

func (s *service) Sync(ctx context.Context, force bool) (*SyncResult, error) {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	result, err := s.sync(ctx, force)
	if err != nil {
		metrics.CatalogSyncs.WithLabelValues(metrics.SyncResultError).Inc()
		return nil, err
	}
	metrics.CatalogSyncs.WithLabelValues(metrics.SyncResultSuccess).Inc()

	if result.Changed() && s.bus != nil {
		evt := event.NewEquipmentSyncedEvent(result.Inserted, result.Updated, result.Skipped, result.EdgesWritten)
		if err := s.bus.Publish(ctx, evt); err != nil {
			return result, fmt.Errorf(ErrMsgPublishSyncedFailedFmt, err)
		}
	}
	return result, nil
}

func (s *service) sync(ctx context.Context, force bool) (*SyncResult, error) {
	config, err := s.loader.Load(s.configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogLoadFailedFmt, err)
	}
	if err := s.loader.Validate(config); err != nil {
		return nil, fmt.Errorf(ErrMsgCatalogValidateFailedFmt, err)
	}
	return s.loader.SyncToDatabase(ctx, config, s.repo, s.configPath, force)
}

func (s *service) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	if !domain.IsValidSlot(filter.Slot) || !filter.Rarity.IsValid() || filter.Offset < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidFilter)
	}
	items, err := s.repo.ListEquipment(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Equipment{}
	}
	return items, nil
}

func (s *service) GetEquipment(ctx context.Context, slug string) (*domain.Equipment, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	return s.repo.GetEquipmentBySlug(ctx, slug)
}

// DeleteEquipment removes an item and its own recipe. Recipes of other items
// that use it keep their now dangling edge.
func (s *service) DeleteEquipment(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}
	if err := s.repo.DeleteEquipment(ctx, slug); err != nil {
		return fmt.Errorf(ErrMsgDeleteEquipmentFailedFmt, slug, err)
	}
	logger.FromContext(ctx).Info(LogMsgEquipmentDeleted, "slug", slug)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewEquipmentDeletedEvent(slug)); err != nil {
			return fmt.Errorf(ErrMsgPublishDeletedFailedFmt, err)
		}
	}
	return nil
}
