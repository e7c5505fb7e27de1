package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// ResolveRawCost walks the recipe tree below item and returns the raw
// materials and gold needed to craft one unit of it.
//
// Quantities multiply along a path: needing 2 of an assembly that takes 3 of
// a part means 6 parts. Children that are themselves craftable (positive gold
// cost) are flattened recursively; everything else counts as raw. Missing
// children are skipped, store errors abort the whole call.
func (s *service) ResolveRawCost(ctx context.Context, item *domain.Equipment) (*domain.RawCostResult, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilItem)
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgResolveRawCostCalled, "slug", item.Slug)

	start := time.Now()
	result, err := s.resolveRawCost(ctx, item, pathSet{})
	if err != nil {
		s.observe(OperationRawCost, OutcomeError, start)
		return nil, err
	}

	if result == nil {
		log.Debug(LogMsgItemNotCraftable, "slug", item.Slug)
		s.observe(OperationRawCost, OutcomeNotCraftable, start)
		return nil, nil
	}

	s.observe(OperationRawCost, OutcomeSuccess, start)
	log.Debug(LogMsgRawCostResolved,
		"slug", item.Slug,
		"gold_cost", result.GoldCost,
		"components", len(result.Components))
	return result, nil
}

func (s *service) resolveRawCost(ctx context.Context, item *domain.Equipment, path pathSet) (*domain.RawCostResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// A craftable item that is already being resolved higher up would
	// recurse forever; the branch resolves to nothing instead.
	if path.contains(item.Slug) {
		logger.FromContext(ctx).Debug(LogMsgCycleTruncated, "slug", item.Slug, "operation", OperationRawCost)
		metrics.CraftingCyclesTruncated.Inc()
		return nil, nil
	}

	required, err := s.repo.GetRequiredItems(ctx, item.Slug)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRequiredItemsFmt, item.Slug, err)
	}
	if len(required) == 0 {
		return nil, nil
	}

	goldCost := item.CraftGoldCost
	components := newComponentAccumulator()
	descendants := path.with(item.Slug)

	for _, req := range required {
		child, err := s.lookupItem(ctx, req.RequiredSlug)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}

		if !child.IsCraftable() {
			components.add(*child, req.Quantity)
			continue
		}

		nested, err := s.resolveRawCost(ctx, child, descendants)
		if err != nil {
			return nil, err
		}
		if nested == nil {
			continue
		}

		goldCost += nested.GoldCost * req.Quantity
		components.mergeScaled(nested.Components, req.Quantity)
	}

	return &domain.RawCostResult{
		GoldCost:   goldCost,
		Components: components.list(),
	}, nil
}
