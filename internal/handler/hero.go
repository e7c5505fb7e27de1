package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/hero"
)

// HeroHandler serves hero templates
type HeroHandler struct {
	service hero.Service
}

// NewHeroHandler creates a new hero handler
func NewHeroHandler(service hero.Service) *HeroHandler {
	return &HeroHandler{service: service}
}

// BulkHeroesRequest is the body of a bulk hero upsert
type BulkHeroesRequest struct {
	Heroes []domain.Hero `json:"heroes" validate:"required,min=1,max=500,dive"`
}

// HeroListResponse wraps a page of heroes
type HeroListResponse struct {
	Heroes []domain.Hero `json:"heroes"`
}

// BulkUpsertResponse reports how many rows a bulk write touched
type BulkUpsertResponse struct {
	Written int `json:"written"`
}

// HandleList lists heroes
// @Summary List heroes
// @Tags heroes
// @Produce json
// @Param class query string false "Hero class"
// @Param rarity query string false "COMMON, UNCOMMON, RARE, EPIC or LEGENDARY"
// @Param limit query int false "1-1000, default 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} HeroListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/heroes [get]
func (h *HeroHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := getPagination(r, w)
	if !ok {
		return
	}

	heroes, err := h.service.ListHeroes(r.Context(), domain.HeroFilter{
		Class:  GetOptionalQueryParam(r, "class", ""),
		Rarity: domain.Rarity(GetOptionalQueryParam(r, "rarity", "")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondServiceError(w, r, OpListHeroes, err)
		return
	}
	respondJSON(w, http.StatusOK, HeroListResponse{Heroes: heroes})
}

// HandleGet returns one hero
// @Summary Get hero
// @Tags heroes
// @Produce json
// @Param slug path string true "Hero slug"
// @Success 200 {object} domain.Hero
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{slug} [get]
func (h *HeroHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	found, err := h.service.GetHero(r.Context(), slug)
	if err != nil {
		respondServiceError(w, r, OpGetHero, err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

// HandleBulkUpsert inserts or updates heroes by slug in one transaction
// @Summary Bulk upsert heroes
// @Tags heroes
// @Accept json
// @Produce json
// @Param request body BulkHeroesRequest true "Heroes"
// @Success 200 {object} BulkUpsertResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/heroes/bulk [post]
func (h *HeroHandler) HandleBulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req BulkHeroesRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpsertHeroes); err != nil {
		return
	}

	written, err := h.service.BulkUpsertHeroes(r.Context(), req.Heroes)
	if err != nil {
		respondServiceError(w, r, OpUpsertHeroes, err)
		return
	}
	respondJSON(w, http.StatusOK, BulkUpsertResponse{Written: written})
}

// HandleDelete removes a hero
// @Summary Delete hero
// @Tags heroes
// @Produce json
// @Param slug path string true "Hero slug"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/heroes/{slug} [delete]
func (h *HeroHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	if err := h.service.DeleteHero(r.Context(), slug); err != nil {
		respondServiceError(w, r, OpDeleteHero, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHeroDeleted})
}
