package crafting

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
)

// CachedRepository caches item lookups in front of another Repository.
// Only successful GetEquipmentBySlug results are cached; edge lookups always
// go to the underlying store.
type CachedRepository struct {
	Repository
	items *expirable.LRU[string, domain.Equipment]
}

// NewCachedRepository wraps repo with an LRU of the given size and TTL.
// A ttl of zero keeps entries until evicted.
func NewCachedRepository(repo Repository, size int, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		items:      expirable.NewLRU[string, domain.Equipment](size, nil, ttl),
	}
}

// GetEquipmentBySlug returns a copy of the cached item or loads it
func (c *CachedRepository) GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	if item, ok := c.items.Get(slug); ok {
		metrics.ItemCacheRequests.WithLabelValues(metrics.CacheResultHit).Inc()
		return &item, nil
	}
	metrics.ItemCacheRequests.WithLabelValues(metrics.CacheResultMiss).Inc()

	item, err := c.Repository.GetEquipmentBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.items.Add(slug, *item)
	return item, nil
}

// Purge drops every cached item
func (c *CachedRepository) Purge() {
	c.items.Purge()
}

// Len reports how many items are cached
func (c *CachedRepository) Len() int {
	return c.items.Len()
}

// Subscribe purges the cache whenever the catalog changes
func (c *CachedRepository) Subscribe(bus event.Bus) {
	handler := func(ctx context.Context, evt event.Event) error {
		c.Purge()
		logger.FromContext(ctx).Info(LogMsgCachePurged, "event_type", evt.Type)
		return nil
	}
	bus.Subscribe(event.EquipmentSynced, handler)
	bus.Subscribe(event.EquipmentDeleted, handler)
	logger.FromContext(context.Background()).Debug(LogMsgCacheSubscribed)
}
