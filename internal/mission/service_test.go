package mission_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/event"
	"github.com/osse101/Armory_Go/internal/mission"
	"github.com/osse101/Armory_Go/mocks"
)

func caveRun(rewards ...domain.MissionReward) domain.Mission {
	return domain.Mission{
		Slug:            "cave_run",
		Name:            "Cave Run",
		Difficulty:      3,
		EnergyCost:      6,
		RewardGold:      40,
		RewardEquipment: rewards,
	}
}

func TestListMissions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  domain.MissionFilter
		wantErr bool
	}{
		{"no filter", domain.MissionFilter{}, false},
		{"open ended range", domain.MissionFilter{MinDifficulty: 4}, false},
		{"single difficulty", domain.MissionFilter{MinDifficulty: 5, MaxDifficulty: 5}, false},
		{"inverted range", domain.MissionFilter{MinDifficulty: 7, MaxDifficulty: 2}, true},
		{"negative offset", domain.MissionFilter{Offset: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockMissionRepository(t)
			if !tt.wantErr {
				repo.On("ListMissions", mock.Anything, tt.filter).Return([]domain.Mission{caveRun()}, nil)
			}

			svc := mission.NewService(repo, mocks.NewMockEquipmentRepository(t), nil)
			missions, err := svc.ListMissions(ctx, tt.filter)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Len(t, missions, 1)
		})
	}
}

func TestBulkUpsertMissions(t *testing.T) {
	ctx := context.Background()
	ore := domain.MissionReward{EquipmentSlug: "iron_ore", Quantity: 3, DropRate: 0.5}

	t.Run("writes and publishes", func(t *testing.T) {
		repo := mocks.NewMockMissionRepository(t)
		equip := mocks.NewMockEquipmentRepository(t)
		bus := mocks.NewMockEventBus(t)
		batch := []domain.Mission{caveRun(ore)}

		equip.On("GetEquipmentBySlug", mock.Anything, "iron_ore").Return(&domain.Equipment{Slug: "iron_ore"}, nil)
		repo.On("BulkUpsertMissions", mock.Anything, batch).Return(1, nil)
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
			return evt.Type == event.MissionUpserted
		})).Return(nil)

		svc := mission.NewService(repo, equip, bus)
		written, err := svc.BulkUpsertMissions(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, 1, written)
	})

	t.Run("unknown reward equipment", func(t *testing.T) {
		equip := mocks.NewMockEquipmentRepository(t)
		equip.On("GetEquipmentBySlug", mock.Anything, "iron_ore").
			Return(nil, fmt.Errorf("%w: iron_ore", domain.ErrItemNotFound))

		svc := mission.NewService(mocks.NewMockMissionRepository(t), equip, nil)
		_, err := svc.BulkUpsertMissions(ctx, []domain.Mission{caveRun(ore)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate reward within a mission", func(t *testing.T) {
		equip := mocks.NewMockEquipmentRepository(t)
		equip.On("GetEquipmentBySlug", mock.Anything, "iron_ore").Return(&domain.Equipment{Slug: "iron_ore"}, nil)

		svc := mission.NewService(mocks.NewMockMissionRepository(t), equip, nil)
		_, err := svc.BulkUpsertMissions(ctx, []domain.Mission{caveRun(ore, ore)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate mission slugs", func(t *testing.T) {
		svc := mission.NewService(mocks.NewMockMissionRepository(t), mocks.NewMockEquipmentRepository(t), nil)
		_, err := svc.BulkUpsertMissions(ctx, []domain.Mission{caveRun(), caveRun()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("publish failure still reports rows written", func(t *testing.T) {
		repo := mocks.NewMockMissionRepository(t)
		bus := mocks.NewMockEventBus(t)
		repo.On("BulkUpsertMissions", mock.Anything, mock.Anything).Return(1, nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := mission.NewService(repo, mocks.NewMockEquipmentRepository(t), bus)
		written, err := svc.BulkUpsertMissions(ctx, []domain.Mission{caveRun()})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, written)
	})
}

func TestDeleteMission(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewMockMissionRepository(t)
	bus := mocks.NewMockEventBus(t)
	repo.On("DeleteMission", mock.Anything, "cave_run").Return(nil)
	repo.On("DeleteMission", mock.Anything, "ghost").Return(fmt.Errorf("%w: ghost", domain.ErrMissionNotFound))
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.MissionDeleted
	})).Return(nil).Once()

	svc := mission.NewService(repo, mocks.NewMockEquipmentRepository(t), bus)
	require.NoError(t, svc.DeleteMission(ctx, "cave_run"))
	assert.ErrorIs(t, svc.DeleteMission(ctx, "ghost"), domain.ErrMissionNotFound)
	assert.ErrorIs(t, svc.DeleteMission(ctx, ""), domain.ErrInvalidInput)
}
