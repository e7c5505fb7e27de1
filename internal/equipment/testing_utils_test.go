package equipment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
)

var errStoreDown = errors.New("connection refused")

// fakeRepository is an in-memory repository.Equipment
type fakeRepository struct {
	mu    sync.Mutex
	items map[string]domain.Equipment
	edges map[string][]domain.RequiredItem
	meta  map[string]domain.SyncMetadata

	syncCalls      int
	shouldFailSync bool
	shouldFailList bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		items: make(map[string]domain.Equipment),
		edges: make(map[string][]domain.RequiredItem),
		meta:  make(map[string]domain.SyncMetadata),
	}
}

func (f *fakeRepository) GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, slug)
	}
	return &item, nil
}

func (f *fakeRepository) GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RequiredItem(nil), f.edges[slug]...), nil
}

func (f *fakeRepository) GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Requirer
	for parent, list := range f.edges {
		for _, ri := range list {
			if ri.RequiredSlug == slug {
				out = append(out, domain.Requirer{ParentSlug: parent, Quantity: ri.Quantity})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParentSlug < out[j].ParentSlug })
	return out, nil
}

func (f *fakeRepository) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	if f.shouldFailList {
		return nil, errStoreDown
	}
	all, _ := f.GetAllEquipment(ctx)
	var out []domain.Equipment
	for _, it := range all {
		if filter.Slot != "" && it.Slot != filter.Slot {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeRepository) GetAllEquipment(ctx context.Context) ([]domain.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Equipment, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (f *fakeRepository) GetAllRequirements(ctx context.Context) ([]domain.RequirementEdge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.RequirementEdge
	for parent, list := range f.edges {
		for _, ri := range list {
			out = append(out, domain.RequirementEdge{ParentSlug: parent, ChildSlug: ri.RequiredSlug, Quantity: ri.Quantity})
		}
	}
	return out, nil
}

func (f *fakeRepository) SyncEquipment(ctx context.Context, items []domain.Equipment, requirements map[string][]domain.RequiredItem) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncCalls++
	if f.shouldFailSync {
		return 0, errStoreDown
	}
	for _, it := range items {
		if existing, ok := f.items[it.Slug]; ok {
			it.ID = existing.ID
		} else {
			it.ID = len(f.items) + 1
		}
		f.items[it.Slug] = it
	}
	written := 0
	for parent, list := range requirements {
		f.edges[parent] = append([]domain.RequiredItem(nil), list...)
		written += len(list)
	}
	return written, nil
}

func (f *fakeRepository) DeleteEquipment(ctx context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[slug]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, slug)
	}
	delete(f.items, slug)
	delete(f.edges, slug)
	return nil
}

func (f *fakeRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.meta[configName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSyncMetadataNotFound, configName)
	}
	return &m, nil
}

func (f *fakeRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meta[metadata.ConfigName] = *metadata
	return nil
}

// recordingBus captures published events
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(eventType event.Type, handler event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

const smallCatalog = `{
	"version": "1.0",
	"items": [
		{"slug": "iron_ore", "name": "Iron Ore", "slot": "material"},
		{"slug": "coal", "name": "Coal", "slot": "material"},
		{"slug": "iron_ingot", "name": "Iron Ingot", "slot": "material", "craft_gold_cost": 2,
			"requires": [{"slug": "iron_ore", "quantity": 2}, {"slug": "coal", "quantity": 1}]},
		{"name": "Iron Sword", "slot": "weapon", "rarity": "UNCOMMON", "craft_gold_cost": 10,
			"requires": [{"slug": "iron_ingot", "quantity": 3}]}
	]
}`

const smallCatalogYAML = `
version: "1.0"
items:
  - slug: iron_ore
    name: Iron Ore
    slot: material
  - slug: coal
    name: Coal
    slot: material
  - name: Iron Ingot
    slot: material
    craft_gold_cost: 2
    requires:
      - slug: iron_ore
        quantity: 2
      - slug: coal
        quantity: 1
`

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "equipment.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
