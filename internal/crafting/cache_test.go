package crafting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
)

func TestCachedRepository_CachesItemLookups(t *testing.T) {
	repo := NewMockRepository().addItem("sword", 5)
	cached := NewCachedRepository(repo, 10, time.Minute)
	ctx := context.Background()

	first, err := cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)
	second, err := cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getItemCalls)
	assert.Equal(t, 1, cached.Len())
}

func TestCachedRepository_ReturnsCopies(t *testing.T) {
	repo := NewMockRepository().addItem("sword", 5)
	cached := NewCachedRepository(repo, 10, time.Minute)
	ctx := context.Background()

	first, err := cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, "sword", second.Name)
}

func TestCachedRepository_DoesNotCacheMisses(t *testing.T) {
	repo := NewMockRepository()
	cached := NewCachedRepository(repo, 10, time.Minute)
	ctx := context.Background()

	_, err := cached.GetEquipmentBySlug(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	_, err = cached.GetEquipmentBySlug(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.Equal(t, 2, repo.getItemCalls)
	assert.Zero(t, cached.Len())
}

func TestCachedRepository_EdgeLookupsPassThrough(t *testing.T) {
	repo := NewMockRepository().
		addItem("sword", 5).
		addRaw("ore").
		require("sword", "ore", 2)
	cached := NewCachedRepository(repo, 10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		required, err := cached.GetRequiredItems(ctx, "sword")
		require.NoError(t, err)
		assert.Len(t, required, 1)
	}
	assert.Equal(t, 3, repo.requiredItemsCalls)
}

func TestCachedRepository_PurgedOnCatalogSync(t *testing.T) {
	repo := NewMockRepository().addItem("sword", 5)
	cached := NewCachedRepository(repo, 10, time.Minute)
	bus := event.NewMemoryBus()
	cached.Subscribe(bus)
	ctx := context.Background()

	_, err := cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)
	require.Equal(t, 1, cached.Len())

	require.NoError(t, bus.Publish(ctx, event.NewEquipmentSyncedEvent(1, 0, 0, 0)))
	assert.Zero(t, cached.Len())

	_, err = cached.GetEquipmentBySlug(ctx, "sword")
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, event.NewEquipmentDeletedEvent("sword")))
	assert.Zero(t, cached.Len())
}

func TestCachedRepository_ResolverSeesSameResults(t *testing.T) {
	repo := NewMockRepository().
		addItem("greatsword", 10).
		addItem("blade", 3).
		addRaw("iron_ore").
		require("greatsword", "blade", 5).
		require("blade", "iron_ore", 2)
	plain := NewService(repo)
	cachedSvc := NewService(NewCachedRepository(repo, 10, time.Minute))
	ctx := context.Background()

	want, err := plain.ResolveRawCostBySlug(ctx, "greatsword")
	require.NoError(t, err)
	got, err := cachedSvc.ResolveRawCostBySlug(ctx, "greatsword")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantProducts, err := plain.FindFinalProducts(ctx, "iron_ore")
	require.NoError(t, err)
	gotProducts, err := cachedSvc.FindFinalProducts(ctx, "iron_ore")
	require.NoError(t, err)
	assert.Equal(t, wantProducts, gotProducts)
}
