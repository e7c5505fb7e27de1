package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/eventlog"
)

// MockEventlogService is a mock implementation of eventlog.Service
type MockEventlogService struct {
	mock.Mock
}

var _ eventlog.Service = (*MockEventlogService)(nil)

// NewMockEventlogService creates a mock that asserts its expectations when the test ends
func NewMockEventlogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventlogService {
	m := &MockEventlogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventlogService) Subscribe(bus event.Bus) error {
	args := m.Called(bus)
	return args.Error(0)
}

func (m *MockEventlogService) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]eventlog.Event), args.Error(1)
}

func (m *MockEventlogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
