package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/mocks"
)

func TestMissionHandler_HandleList(t *testing.T) {
	t.Run("difficulty range", func(t *testing.T) {
		svc := mocks.NewMockMissionService(t)
		filter := domain.MissionFilter{MinDifficulty: 2, MaxDifficulty: 5}
		svc.On("ListMissions", mock.Anything, filter).Return([]domain.Mission{{Slug: "cave_run", Difficulty: 3}}, nil)
		h := NewMissionHandler(svc)

		rec := serveRoute(http.MethodGet, "/missions", "/missions?min_difficulty=2&max_difficulty=5", "", h.HandleList)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[MissionListResponse](t, rec).Missions, 1)
	})

	t.Run("non numeric difficulty", func(t *testing.T) {
		h := NewMissionHandler(mocks.NewMockMissionService(t))

		rec := serveRoute(http.MethodGet, "/missions", "/missions?min_difficulty=hard", "", h.HandleList)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMissionHandler_HandleBulkUpsert(t *testing.T) {
	t.Run("valid batch", func(t *testing.T) {
		svc := mocks.NewMockMissionService(t)
		svc.On("BulkUpsertMissions", mock.Anything, mock.MatchedBy(func(missions []domain.Mission) bool {
			return len(missions) == 1 && missions[0].RewardEquipment[0].DropRate == 0.25
		})).Return(1, nil)
		h := NewMissionHandler(svc)

		body := `{"missions":[{"slug":"cave_run","name":"Cave Run","difficulty":3,"energy_cost":6,"reward_gold":40,
			"reward_equipment":[{"equipment_slug":"iron_ore","quantity":2,"drop_rate":0.25}]}]}`
		rec := serveRoute(http.MethodPost, "/missions/bulk", "/missions/bulk", body, h.HandleBulkUpsert)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decodeBody[BulkUpsertResponse](t, rec).Written)
	})

	t.Run("field validation", func(t *testing.T) {
		h := NewMissionHandler(mocks.NewMockMissionService(t))

		body := `{"missions":[{"slug":"cave_run","name":"Cave Run","difficulty":11,
			"reward_equipment":[{"equipment_slug":"iron_ore","quantity":0,"drop_rate":1.5}]}]}`
		rec := serveRoute(http.MethodPost, "/missions/bulk", "/missions/bulk", body, h.HandleBulkUpsert)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := decodeBody[ValidationErrorResponse](t, rec).Fields
		assert.Contains(t, fields, "missions[0].difficulty")
		assert.Contains(t, fields, "missions[0].reward_equipment[0].quantity")
		assert.Contains(t, fields, "missions[0].reward_equipment[0].drop_rate")
	})
}

func TestMissionHandler_HandleDelete(t *testing.T) {
	svc := mocks.NewMockMissionService(t)
	svc.On("DeleteMission", mock.Anything, "cave_run").Return(nil)
	h := NewMissionHandler(svc)

	rec := serveRoute(http.MethodDelete, "/missions/{slug}", "/missions/cave_run", "", h.HandleDelete)

	assert.Equal(t, http.StatusOK, rec.Code)
}
