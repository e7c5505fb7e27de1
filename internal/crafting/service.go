package crafting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// Service defines the crafting dependency queries over the equipment graph
type Service interface {
	// ResolveRawCost flattens the crafting tree of item into raw materials and
	// total gold. Returns nil when the item has no recipe.
	ResolveRawCost(ctx context.Context, item *domain.Equipment) (*domain.RawCostResult, error)
	// ResolveRawCostBySlug loads the item first. Unknown slugs return domain.ErrItemNotFound.
	ResolveRawCostBySlug(ctx context.Context, slug string) (*domain.RawCostResult, error)
	// FindFinalProducts lists every final product that transitively consumes rootSlug.
	FindFinalProducts(ctx context.Context, rootSlug string) ([]domain.FinalProduct, error)
	// GetRecipe returns the direct ingredients of an item.
	GetRecipe(ctx context.Context, slug string) (*domain.Recipe, error)
}

type service struct {
	repo Repository
}

// NewService creates a new crafting service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ResolveRawCostBySlug resolves the raw cost of the item identified by slug
func (s *service) ResolveRawCostBySlug(ctx context.Context, slug string) (*domain.RawCostResult, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}

	item, err := s.repo.GetEquipmentBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, slug, err)
	}

	return s.ResolveRawCost(ctx, item)
}

// GetRecipe returns an item with its direct requirements resolved to catalog
// records. Requirements pointing at missing items are left out.
func (s *service) GetRecipe(ctx context.Context, slug string) (*domain.Recipe, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}

	start := time.Now()
	item, err := s.repo.GetEquipmentBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		s.observe(OperationRecipe, OutcomeError, start)
		return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, slug, err)
	}

	required, err := s.repo.GetRequiredItems(ctx, slug)
	if err != nil {
		s.observe(OperationRecipe, OutcomeError, start)
		return nil, fmt.Errorf(ErrMsgGetRequiredItemsFmt, slug, err)
	}

	recipe := &domain.Recipe{
		Item:       *item,
		GoldCost:   item.CraftGoldCost,
		Components: make([]domain.RecipeComponent, 0, len(required)),
	}
	for _, req := range required {
		component, err := s.lookupItem(ctx, req.RequiredSlug)
		if err != nil {
			s.observe(OperationRecipe, OutcomeError, start)
			return nil, err
		}
		if component == nil {
			continue
		}
		recipe.Components = append(recipe.Components, domain.RecipeComponent{
			Item:     *component,
			Quantity: req.Quantity,
		})
	}

	outcome := OutcomeSuccess
	if len(required) == 0 {
		outcome = OutcomeNotCraftable
	}
	s.observe(OperationRecipe, outcome, start)
	return recipe, nil
}

// lookupItem fetches a referenced item. A missing item is a soft failure and
// comes back as (nil, nil); every other error is returned wrapped.
func (s *service) lookupItem(ctx context.Context, slug string) (*domain.Equipment, error) {
	item, err := s.repo.GetEquipmentBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			logger.FromContext(ctx).Debug(LogMsgDanglingEdgeSkipped, "slug", slug)
			metrics.CraftingDanglingEdges.Inc()
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, slug, err)
	}
	return item, nil
}

func (s *service) observe(operation, outcome string, start time.Time) {
	metrics.CraftingResolutions.WithLabelValues(operation, outcome).Inc()
	metrics.CraftingDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
