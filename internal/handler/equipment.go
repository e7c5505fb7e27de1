package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/equipment"
)

// EquipmentHandler serves the equipment catalog and the crafting queries over it
type EquipmentHandler struct {
	catalog        equipment.Service
	crafting       crafting.Service
	resolveTimeout time.Duration
}

// NewEquipmentHandler creates the handler. Each crafting query runs under
// resolveTimeout; zero disables the limit.
func NewEquipmentHandler(catalog equipment.Service, craftingSvc crafting.Service, resolveTimeout time.Duration) *EquipmentHandler {
	return &EquipmentHandler{
		catalog:        catalog,
		crafting:       craftingSvc,
		resolveTimeout: resolveTimeout,
	}
}

// EquipmentListResponse wraps a page of equipment
type EquipmentListResponse struct {
	Equipment []domain.Equipment `json:"equipment"`
}

// ComponentResponse is one slug/quantity pair of a recipe or bill of materials
type ComponentResponse struct {
	ItemSlug string `json:"item_slug"`
	Quantity int    `json:"quantity"`
}

// RecipeResponse lists the direct ingredients of an item
type RecipeResponse struct {
	ItemSlug   string              `json:"item_slug"`
	GoldCost   int                 `json:"gold_cost"`
	Components []ComponentResponse `json:"components"`
}

// RawCostResponse is the flattened cost of crafting one unit of an item
type RawCostResponse struct {
	ItemSlug   string              `json:"item_slug"`
	Craftable  bool                `json:"craftable"`
	GoldCost   int                 `json:"gold_cost"`
	Components []ComponentResponse `json:"components"`
}

// FinalProductResponse is a terminal item that consumes the queried item
type FinalProductResponse struct {
	ItemSlug      string `json:"item_slug"`
	TotalQuantity int    `json:"total_quantity"`
}

// HandleList lists equipment with optional filters
// @Summary List equipment
// @Tags equipment
// @Produce json
// @Param slot query string false "weapon, armor, helmet, boots, accessory or material"
// @Param rarity query string false "COMMON, UNCOMMON, RARE, EPIC or LEGENDARY"
// @Param craftable query bool false "Only items with (true) or without (false) a recipe"
// @Param limit query int false "1-1000, default 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} EquipmentListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/equipment [get]
func (h *EquipmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := getPagination(r, w)
	if !ok {
		return
	}

	filter := domain.EquipmentFilter{
		Slot:   GetOptionalQueryParam(r, "slot", ""),
		Rarity: domain.Rarity(GetOptionalQueryParam(r, "rarity", "")),
		Limit:  limit,
		Offset: offset,
	}
	if raw := r.URL.Query().Get("craftable"); raw != "" {
		craftable, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCraftable)
			return
		}
		filter.Craftable = &craftable
	}

	items, err := h.catalog.ListEquipment(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, OpListEquipment, err)
		return
	}
	respondJSON(w, http.StatusOK, EquipmentListResponse{Equipment: items})
}

// HandleGet returns one equipment record
// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Param slug path string true "Equipment slug"
// @Success 200 {object} domain.Equipment
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/equipment/{slug} [get]
func (h *EquipmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	item, err := h.catalog.GetEquipment(r.Context(), slug)
	if err != nil {
		respondServiceError(w, r, OpGetEquipment, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleDelete removes an item and its recipe. Recipes that use the item keep
// their edge and skip it when resolved.
// @Summary Delete equipment
// @Tags equipment
// @Produce json
// @Param slug path string true "Equipment slug"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/equipment/{slug} [delete]
func (h *EquipmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	if err := h.catalog.DeleteEquipment(r.Context(), slug); err != nil {
		respondServiceError(w, r, OpDeleteEquipment, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEquipmentDeleted})
}

// HandleGetRecipe returns the direct ingredients of an item
// @Summary Get recipe
// @Tags crafting
// @Produce json
// @Param slug path string true "Equipment slug"
// @Success 200 {object} RecipeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/equipment/{slug}/recipe [get]
func (h *EquipmentHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	ctx, cancel := h.withResolveTimeout(r.Context())
	defer cancel()

	recipe, err := h.crafting.GetRecipe(ctx, slug)
	if err != nil {
		respondServiceError(w, r, OpGetRecipe, err)
		return
	}

	components := make([]ComponentResponse, len(recipe.Components))
	for i, c := range recipe.Components {
		components[i] = ComponentResponse{ItemSlug: c.Item.Slug, Quantity: c.Quantity}
	}
	respondJSON(w, http.StatusOK, RecipeResponse{
		ItemSlug:   recipe.Item.Slug,
		GoldCost:   recipe.GoldCost,
		Components: components,
	})
}

// HandleGetRawCost flattens the crafting tree of an item into raw materials
// and total gold. Items without a recipe report craftable=false.
// @Summary Resolve raw crafting cost
// @Tags crafting
// @Produce json
// @Param slug path string true "Equipment slug"
// @Success 200 {object} RawCostResponse
// @Failure 404 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/v1/equipment/{slug}/raw-cost [get]
func (h *EquipmentHandler) HandleGetRawCost(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	ctx, cancel := h.withResolveTimeout(r.Context())
	defer cancel()

	result, err := h.crafting.ResolveRawCostBySlug(ctx, slug)
	if err != nil {
		respondServiceError(w, r, OpResolveRawCost, err)
		return
	}

	response := RawCostResponse{ItemSlug: slug, Components: []ComponentResponse{}}
	if result != nil {
		response.Craftable = true
		response.GoldCost = result.GoldCost
		for _, c := range result.Components {
			response.Components = append(response.Components, ComponentResponse{ItemSlug: c.Item.Slug, Quantity: c.Quantity})
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// HandleGetFinalProducts lists every final product that transitively
// consumes an item, with quantities summed across paths
// @Summary Find final products
// @Tags crafting
// @Produce json
// @Param slug path string true "Equipment slug"
// @Success 200 {array} FinalProductResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/v1/equipment/{slug}/final-products [get]
func (h *EquipmentHandler) HandleGetFinalProducts(w http.ResponseWriter, r *http.Request) {
	slug, ok := GetPathParam(r, w, "slug")
	if !ok {
		return
	}

	ctx, cancel := h.withResolveTimeout(r.Context())
	defer cancel()

	products, err := h.crafting.FindFinalProducts(ctx, slug)
	if err != nil {
		respondServiceError(w, r, OpFindFinalProducts, err)
		return
	}

	response := make([]FinalProductResponse, len(products))
	for i, p := range products {
		response[i] = FinalProductResponse{ItemSlug: p.Item.Slug, TotalQuantity: p.TotalQuantity}
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *EquipmentHandler) withResolveTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.resolveTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.resolveTimeout)
}
