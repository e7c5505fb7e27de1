package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// FindFinalProducts climbs the requirer graph from rootSlug and returns every
// final product (an item nothing else requires) that consumes it, with the
// number of root units each one needs summed over all paths.
//
// The root itself is never reported. Products come back in the order they
// were first reached. Cyclic branches are dropped without error.
func (s *service) FindFinalProducts(ctx context.Context, rootSlug string) ([]domain.FinalProduct, error) {
	if rootSlug == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySlug)
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgFindFinalProductsCalled, "slug", rootSlug)

	start := time.Now()
	totals := newProductAccumulator()

	requirers, err := s.requirersOf(ctx, rootSlug)
	if err != nil {
		s.observe(OperationFinalProducts, OutcomeError, start)
		return nil, err
	}
	if err := s.visitRequirers(ctx, rootSlug, requirers, 1, pathSet{}, totals); err != nil {
		s.observe(OperationFinalProducts, OutcomeError, start)
		return nil, err
	}

	products := make([]domain.FinalProduct, 0, totals.len())
	for _, slug := range totals.order {
		item, err := s.lookupItem(ctx, slug)
		if err != nil {
			s.observe(OperationFinalProducts, OutcomeError, start)
			return nil, err
		}
		if item == nil {
			continue
		}
		products = append(products, domain.FinalProduct{
			Item:          *item,
			TotalQuantity: totals.totals[slug],
		})
	}

	s.observe(OperationFinalProducts, OutcomeSuccess, start)
	log.Debug(LogMsgFinalProductsFound, "slug", rootSlug, "count", len(products))
	return products, nil
}

// visitRequirers handles one node of the upward walk. requirers are the
// already fetched incoming edges of current; each parent is looked up once
// more to decide whether it is final (no requirers) or has to be climbed.
// path holds the ancestors of current on this branch only, so a node reached
// through two independent paths is counted on both.
func (s *service) visitRequirers(ctx context.Context, current string, requirers []domain.Requirer, multiplier int, path pathSet, totals *productAccumulator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path.contains(current) {
		logger.FromContext(ctx).Debug(LogMsgCycleTruncated, "slug", current, "operation", OperationFinalProducts)
		metrics.CraftingCyclesTruncated.Inc()
		return nil
	}

	if len(requirers) == 0 {
		return nil
	}

	ancestors := path.with(current)
	for _, edge := range requirers {
		parentMultiplier := multiplier * edge.Quantity

		parentRequirers, err := s.requirersOf(ctx, edge.ParentSlug)
		if err != nil {
			return err
		}

		if len(parentRequirers) == 0 {
			totals.add(edge.ParentSlug, parentMultiplier)
			continue
		}

		if err := s.visitRequirers(ctx, edge.ParentSlug, parentRequirers, parentMultiplier, ancestors, totals); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) requirersOf(ctx context.Context, slug string) ([]domain.Requirer, error) {
	requirers, err := s.repo.GetRequirers(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetRequirersFmt, slug, err)
	}
	return requirers, nil
}
