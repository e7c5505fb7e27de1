package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// MockEquipmentRepository is a mock implementation of repository.Equipment
type MockEquipmentRepository struct {
	mock.Mock
}

var _ repository.Equipment = (*MockEquipmentRepository)(nil)

// NewMockEquipmentRepository creates a mock that asserts its expectations when the test ends
func NewMockEquipmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentRepository {
	m := &MockEquipmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEquipmentRepository) GetEquipmentBySlug(ctx context.Context, slug string) (*domain.Equipment, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetRequiredItems(ctx context.Context, slug string) ([]domain.RequiredItem, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequiredItem), args.Error(1)
}

func (m *MockEquipmentRepository) GetRequirers(ctx context.Context, slug string) ([]domain.Requirer, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Requirer), args.Error(1)
}

func (m *MockEquipmentRepository) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetAllEquipment(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetAllRequirements(ctx context.Context) ([]domain.RequirementEdge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequirementEdge), args.Error(1)
}

func (m *MockEquipmentRepository) SyncEquipment(ctx context.Context, items []domain.Equipment, requirements map[string][]domain.RequiredItem) (int, error) {
	args := m.Called(ctx, items, requirements)
	return args.Int(0), args.Error(1)
}

func (m *MockEquipmentRepository) DeleteEquipment(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	args := m.Called(ctx, configName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncMetadata), args.Error(1)
}

func (m *MockEquipmentRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}
