//go:build staging

package staging

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equipmentList struct {
	Equipment []struct {
		Slug          string `json:"slug"`
		CraftGoldCost int    `json:"craft_gold_cost"`
	} `json:"equipment"`
}

type rawCost struct {
	ItemSlug   string `json:"item_slug"`
	Craftable  bool   `json:"craftable"`
	GoldCost   int    `json:"gold_cost"`
	Components []struct {
		ItemSlug string `json:"item_slug"`
		Quantity int    `json:"quantity"`
	} `json:"components"`
}

type finalProduct struct {
	ItemSlug      string `json:"item_slug"`
	TotalQuantity int    `json:"total_quantity"`
}

func TestSmoke_CatalogResolves(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/api/v1/equipment?craftable=true&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	list := decode[equipmentList](t, body)
	require.NotEmpty(t, list.Equipment, "catalog should contain craftable items")

	slug := list.Equipment[0].Slug
	resp, body = makeRequest(t, http.MethodGet, "/api/v1/equipment/"+slug+"/raw-cost", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	cost := decode[rawCost](t, body)
	assert.True(t, cost.Craftable)
	assert.GreaterOrEqual(t, cost.GoldCost, list.Equipment[0].CraftGoldCost)
	require.NotEmpty(t, cost.Components)

	// A raw material of a craftable item is consumed by at least one final product
	material := cost.Components[0].ItemSlug
	resp, body = makeRequest(t, http.MethodGet, "/api/v1/equipment/"+material+"/final-products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	products := decode[[]finalProduct](t, body)
	assert.NotEmpty(t, products)
}

func TestSmoke_UnknownItem(t *testing.T) {
	resp, _ := makeRequest(t, http.MethodGet, "/api/v1/equipment/no_such_item_xyz/raw-cost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := makeRequest(t, http.MethodGet, "/api/v1/equipment/no_such_item_xyz/final-products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestSmoke_HeroLifecycle(t *testing.T) {
	const slug = "staging_smoke_hero"
	payload := map[string]interface{}{
		"heroes": []map[string]interface{}{
			{"slug": slug, "name": "Staging Smoke Hero", "class": "warrior", "rarity": "COMMON"},
		},
	}

	resp, body := makeRequest(t, http.MethodPost, "/api/v1/heroes/bulk", payload)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	t.Cleanup(func() {
		makeRequest(t, http.MethodDelete, "/api/v1/heroes/"+slug, nil)
	})

	resp, body = makeRequest(t, http.MethodGet, "/api/v1/heroes/"+slug, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "Staging Smoke Hero")

	resp, _ = makeRequest(t, http.MethodDelete, "/api/v1/heroes/"+slug, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = makeRequest(t, http.MethodGet, "/api/v1/heroes/"+slug, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
