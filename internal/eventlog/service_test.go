package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

	for _, et := range event.AllTypes() {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent_SlugPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	hooks := NewTestHooks(NewService(mockRepo))
	ctx := context.Background()

	slug := "iron_sword"
	mockRepo.On("LogEvent", ctx, string(event.EquipmentDeleted), &slug,
		mock.MatchedBy(func(p map[string]interface{}) bool { return p["slug"] == slug }),
		mock.Anything).Return(nil)

	err := hooks.HandleEvent(ctx, event.NewEquipmentDeletedEvent(slug))
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_NoSubject(t *testing.T) {
	mockRepo := new(MockRepository)
	hooks := NewTestHooks(NewService(mockRepo))
	ctx := context.Background()

	mockRepo.On("LogEvent", ctx, string(event.EquipmentSynced), (*string)(nil),
		mock.MatchedBy(func(p map[string]interface{}) bool { return p["inserted"] == float64(4) }),
		mock.Anything).Return(nil)

	err := hooks.HandleEvent(ctx, event.NewEquipmentSyncedEvent(4, 0, 1, 9))
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)
	hooks := NewTestHooks(NewService(mockRepo))
	ctx := context.Background()

	mockRepo.On("LogEvent", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	err := hooks.HandleEvent(ctx, event.NewHeroDeletedEvent("knight"))
	assert.Error(t, err)
}

func TestService_ThroughMemoryBus(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	bus := event.NewMemoryBus()
	require.NoError(t, service.Subscribe(bus))
	ctx := context.Background()

	mockRepo.On("LogEvent", ctx, string(event.HeroUpserted), (*string)(nil), mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, bus.Publish(ctx, event.NewHeroUpsertedEvent([]string{"knight", "mage"})))
	mockRepo.AssertNumberOfCalls(t, "LogEvent", 1)
}

func TestService_GetEventsClampsLimit(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetEvents", ctx, EventFilter{Limit: DefaultEventLimit}).Return([]Event{{ID: 1}}, nil).Once()
	mockRepo.On("GetEvents", ctx, EventFilter{Limit: MaxEventLimit}).Return([]Event{}, nil).Once()

	events, err := service.GetEvents(ctx, EventFilter{})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = service.GetEvents(ctx, EventFilter{Limit: 50000})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)

	count, err := service.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
