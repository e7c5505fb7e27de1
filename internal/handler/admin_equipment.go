package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/equipment"
)

// AdminEquipmentHandler exposes catalog maintenance
type AdminEquipmentHandler struct {
	catalog equipment.Service
}

// NewAdminEquipmentHandler creates a new admin equipment handler
func NewAdminEquipmentHandler(catalog equipment.Service) *AdminEquipmentHandler {
	return &AdminEquipmentHandler{catalog: catalog}
}

// SyncResponse reports the outcome of a catalog sync
type SyncResponse struct {
	Message string                `json:"message"`
	Result  *equipment.SyncResult `json:"result"`
}

// HandleSync reloads the catalog file. By default the file is re-imported
// even when unchanged; pass force=false to honour change detection.
// @Summary Sync equipment catalog
// @Tags admin
// @Produce json
// @Param force query bool false "Ignore change detection (default true)"
// @Success 200 {object} SyncResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/admin/equipment/sync [post]
func (h *AdminEquipmentHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	force := GetOptionalQueryParam(r, "force", "true") != "false"

	result, err := h.catalog.Sync(r.Context(), force)
	if err != nil {
		respondServiceError(w, r, OpSyncCatalog, err)
		return
	}

	message := MsgCatalogSynced
	if result.Unchanged {
		message = MsgCatalogUnchanged
	}
	respondJSON(w, http.StatusOK, SyncResponse{Message: message, Result: result})
}
