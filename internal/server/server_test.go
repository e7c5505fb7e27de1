package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/mocks"
)

type routerFixture struct {
	equipment *mocks.MockEquipmentService
	crafting  *mocks.MockCraftingService
	hero      *mocks.MockHeroService
	mission   *mocks.MockMissionService
	eventlog  *mocks.MockEventlogService
	handler   http.Handler
}

func newRouterFixture(t *testing.T, opts Options) *routerFixture {
	f := &routerFixture{
		equipment: mocks.NewMockEquipmentService(t),
		crafting:  mocks.NewMockCraftingService(t),
		hero:      mocks.NewMockHeroService(t),
		mission:   mocks.NewMockMissionService(t),
		eventlog:  mocks.NewMockEventlogService(t),
	}
	srv := NewServer(opts, nil, Services{
		Equipment: f.equipment,
		Crafting:  f.crafting,
		Hero:      f.hero,
		Mission:   f.mission,
		Eventlog:  f.eventlog,
	})
	f.handler = srv.Handler()
	return f
}

func (f *routerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	captureLogs(t)
	f := newRouterFixture(t, Options{ResolveTimeout: time.Second, RateLimitWindow: time.Minute})

	sword := &domain.Equipment{Slug: "iron_sword", Name: "Iron Sword", CraftGoldCost: 5}
	f.equipment.On("GetEquipment", mock.Anything, "iron_sword").Return(sword, nil)
	f.equipment.On("ListEquipment", mock.Anything, domain.EquipmentFilter{}).Return([]domain.Equipment{*sword}, nil)
	f.crafting.On("ResolveRawCostBySlug", mock.Anything, "iron_sword").Return(&domain.RawCostResult{GoldCost: 5}, nil)
	f.crafting.On("FindFinalProducts", mock.Anything, "iron_ore").Return([]domain.FinalProduct{}, nil)
	f.hero.On("ListHeroes", mock.Anything, domain.HeroFilter{}).Return([]domain.Hero{}, nil)
	f.mission.On("GetMission", mock.Anything, "goblin_cave").Return(nil, domain.ErrMissionNotFound)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/equipment", http.StatusOK},
		{http.MethodGet, "/api/v1/equipment/iron_sword", http.StatusOK},
		{http.MethodGet, "/api/v1/equipment/iron_sword/raw-cost", http.StatusOK},
		{http.MethodGet, "/api/v1/equipment/iron_ore/final-products", http.StatusOK},
		{http.MethodGet, "/api/v1/heroes", http.StatusOK},
		{http.MethodGet, "/api/v1/missions/goblin_cave", http.StatusNotFound},
		{http.MethodPost, "/api/v1/equipment/iron_sword", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := f.do(tt.method, tt.target, "")
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestRouter_RateLimitApplies(t *testing.T) {
	captureLogs(t)
	f := newRouterFixture(t, Options{RateLimitRequests: 2, RateLimitWindow: time.Minute})
	f.hero.On("ListHeroes", mock.Anything, domain.HeroFilter{}).Return([]domain.Hero{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/heroes", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/heroes", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodGet, "/api/v1/heroes", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	captureLogs(t)
	f := newRouterFixture(t, Options{RateLimitWindow: time.Minute})

	body := `{"heroes":[{"slug":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}]}`
	rec := f.do(http.MethodPost, "/api/v1/heroes/bulk", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
