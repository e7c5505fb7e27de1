package crafting

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/Armory_Go/internal/domain"
)

var errStoreDown = errors.New("connection refused")

// MockRepository is an in-memory equipment graph for resolver tests
type MockRepository struct {
	mu    sync.Mutex
	items map[string]*domain.Equipment
	edges []domain.RequirementEdge

	shouldFailGetItem     bool
	shouldFailRequiredOf  bool
	shouldFailRequirersOf bool
	failRequiredOfSlug    string
	getItemCalls          int
	requiredItemsCalls    int
	requirersCalls        int
}

// NewMockRepository creates an empty graph
func NewMockRepository() *MockRepository {
	return &MockRepository{items: make(map[string]*domain.Equipment)}
}

func (m *MockRepository) addRaw(slug string) *MockRepository {
	return m.addItem(slug, 0)
}

func (m *MockRepository) addItem(slug string, goldCost int) *MockRepository {
	m.items[slug] = &domain.Equipment{
		ID:            len(m.items) + 1,
		Slug:          slug,
		Name:          slug,
		CraftGoldCost: goldCost,
	}
	return m
}

func (m *MockRepository) require(parent, child string, quantity int) *MockRepository {
	m.edges = append(m.edges, domain.RequirementEdge{ParentSlug: parent, ChildSlug: child, Quantity: quantity})
	return m
}

func (m *MockRepository) GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getItemCalls++

	if m.shouldFailGetItem {
		return nil, errStoreDown
	}
	item, ok := m.items[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, slug)
	}
	copied := *item
	return &copied, nil
}

func (m *MockRepository) GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requiredItemsCalls++

	if m.shouldFailRequiredOf || (m.failRequiredOfSlug != "" && m.failRequiredOfSlug == slug) {
		return nil, errStoreDown
	}
	var out []domain.RequiredItem
	for _, e := range m.edges {
		if e.ParentSlug == slug {
			out = append(out, domain.RequiredItem{RequiredSlug: e.ChildSlug, Quantity: e.Quantity})
		}
	}
	return out, nil
}

func (m *MockRepository) GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requirersCalls++

	if m.shouldFailRequirersOf {
		return nil, errStoreDown
	}
	var out []domain.Requirer
	for _, e := range m.edges {
		if e.ChildSlug == slug {
			out = append(out, domain.Requirer{ParentSlug: e.ParentSlug, Quantity: e.Quantity})
		}
	}
	return out, nil
}

func (m *MockRepository) item(slug string) *domain.Equipment {
	copied := *m.items[slug]
	return &copied
}

// componentQuantities flattens a result into slug -> quantity for assertions
func componentQuantities(result *domain.RawCostResult) map[string]int {
	out := make(map[string]int, len(result.Components))
	for _, c := range result.Components {
		out[c.Item.Slug] += c.Quantity
	}
	return out
}

func productQuantities(products []domain.FinalProduct) map[string]int {
	out := make(map[string]int, len(products))
	for _, p := range products {
		out[p.Item.Slug] += p.TotalQuantity
	}
	return out
}
