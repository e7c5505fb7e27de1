package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// MockMissionRepository is a mock implementation of repository.Mission
type MockMissionRepository struct {
	mock.Mock
}

var _ repository.Mission = (*MockMissionRepository)(nil)

// NewMockMissionRepository creates a mock that asserts its expectations when the test ends
func NewMockMissionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMissionRepository {
	m := &MockMissionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMissionRepository) GetMissionBySlug(ctx context.Context, slug string) (*domain.Mission, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockMissionRepository) ListMissions(ctx context.Context, filter domain.MissionFilter) ([]domain.Mission, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockMissionRepository) BulkUpsertMissions(ctx context.Context, missions []domain.Mission) (int, error) {
	args := m.Called(ctx, missions)
	return args.Int(0), args.Error(1)
}

func (m *MockMissionRepository) DeleteMission(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
