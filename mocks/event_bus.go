package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

var _ event.Bus = (*MockEventBus)(nil)

// NewMockEventBus creates a mock that asserts its expectations when the test ends
func NewMockEventBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventBus {
	m := &MockEventBus{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
