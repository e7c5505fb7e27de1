package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/mission"
)

// MissionHandler serves missions and their reward tables
type MissionHandler struct {
	service mission.Service
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(service mission.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

// BulkMissionsRequest is the body of a bulk mission upsert
type BulkMissionsRequest struct {
	Missions []domain.Mission `json:"missions" validate:"required,min=1,max=500,dive"`
}

// MissionListResponse wraps a page of missions
type MissionListResponse struct {
	Missions []domain.Mission `json:"missions"`
}

// HandleList lists missions, optionally within a difficulty range
// @Summary List missions
// @Tags missions
// @Produce json
// @Param min_difficulty query int false "Lowest difficulty, inclusive"
// @Param max_difficulty query int false "Highest difficulty, inclusive"
// @Param limit query int false "1-1000, default 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} MissionListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/missions [get]
func (h *MissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := getPagination(r, w)
	if !ok {
		return
	}
	minDifficulty, ok := getOptionalIntParam(r, w, "min_difficulty")
	if !ok {
		return
	}
	maxDifficulty, ok := getOptionalIntParam(r, w, "max_difficulty")
	if !ok {
		return
	}

	missions, err := h.service.ListMissions(r.Context(), domain.MissionFilter{
		MinDifficulty: minDifficulty,
		MaxDifficulty: maxDifficulty,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		respondServiceError(w, r, OpListMissions, err)
		return
	}
	respondJSON(w, http.StatusOK, MissionListResponse{Missions: missions})
}

// HandleGet returns one mission
// @Summary Get mission
// @Tags missions
// @Produce json
// @Param slug path string true "Mission slug"
// @Success 200 {object} domain.Mission
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/missions/{slug} [get]
func (h *MissionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	found, err := h.service.GetMission(r.Context(), slug)
	if err != nil {
		respondServiceError(w, r, OpGetMission, err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

// HandleBulkUpsert inserts or updates missions by slug in one transaction
// @Summary Bulk upsert missions
// @Tags missions
// @Accept json
// @Produce json
// @Param request body BulkMissionsRequest true "Missions"
// @Success 200 {object} BulkUpsertResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/missions/bulk [post]
func (h *MissionHandler) HandleBulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req BulkMissionsRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpUpsertMissions); err != nil {
		return
	}

	written, err := h.service.BulkUpsertMissions(r.Context(), req.Missions)
	if err != nil {
		respondServiceError(w, r, OpUpsertMissions, err)
		return
	}
	respondJSON(w, http.StatusOK, BulkUpsertResponse{Written: written})
}

// HandleDelete removes a mission
// @Summary Delete mission
// @Tags missions
// @Produce json
// @Param slug path string true "Mission slug"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/missions/{slug} [delete]
func (h *MissionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	if err := h.service.DeleteMission(r.Context(), slug); err != nil {
		respondServiceError(w, r, OpDeleteMission, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMissionDeleted})
}
