package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/equipment"
)

// MockEquipmentService is a mock implementation of equipment.Service
type MockEquipmentService struct {
	mock.Mock
}

var _ equipment.Service = (*MockEquipmentService)(nil)

// NewMockEquipmentService creates a mock that asserts its expectations when the test ends
func NewMockEquipmentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentService {
	m := &MockEquipmentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEquipmentService) Sync(ctx context.Context, force bool) (*equipment.SyncResult, error) {
	args := m.Called(ctx, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*equipment.SyncResult), args.Error(1)
}

func (m *MockEquipmentService) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentService) GetEquipment(ctx context.Context, slug string) (*domain.Equipment, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentService) DeleteEquipment(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
