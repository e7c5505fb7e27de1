package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/domain"
)

// MockCraftingService is a mock implementation of crafting.Service
type MockCraftingService struct {
	mock.Mock
}

var _ crafting.Service = (*MockCraftingService)(nil)

// NewMockCraftingService creates a mock that asserts its expectations when the test ends
func NewMockCraftingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCraftingService {
	m := &MockCraftingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCraftingService) ResolveRawCost(ctx context.Context, item *domain.Equipment) (*domain.RawCostResult, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawCostResult), args.Error(1)
}

func (m *MockCraftingService) ResolveRawCostBySlug(ctx context.Context, slug string) (*domain.RawCostResult, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawCostResult), args.Error(1)
}

func (m *MockCraftingService) FindFinalProducts(ctx context.Context, rootSlug string) ([]domain.FinalProduct, error) {
	args := m.Called(ctx, rootSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinalProduct), args.Error(1)
}

func (m *MockCraftingService) GetRecipe(ctx context.Context, slug string) (*domain.Recipe, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}
