package domain

import "time"

// Equipment represents a craftable or raw piece of gear in the catalog.
// Slug is the stable identifier used by recipes and the public API.
type Equipment struct {
	ID            int       `json:"id" db:"equipment_id"`
	Slug          string    `json:"slug" db:"slug"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description,omitempty" db:"description"`
	Rarity        Rarity    `json:"rarity" db:"rarity"`
	Slot          string    `json:"slot,omitempty" db:"slot"`
	Tier          int       `json:"tier" db:"tier"`
	CraftGoldCost int       `json:"craft_gold_cost" db:"craft_gold_cost"` // 0 when the item is not crafted
	SellValue     int       `json:"sell_value" db:"sell_value"`
	CreatedAt     time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// IsCraftable reports whether crafting this item costs gold, which is how the
// catalog marks items that are assembled from other items.
func (e *Equipment) IsCraftable() bool {
	return e.CraftGoldCost > 0
}

// Rarity is the display rarity of equipment and heroes
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// IsValid checks the rarity against the known values. Empty is allowed and
// treated as common by the importer.
func (r Rarity) IsValid() bool {
	switch r {
	case "", RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// EquipmentFilter narrows equipment listings
type EquipmentFilter struct {
	Slot      string
	Rarity    Rarity
	Craftable *bool
	Limit     int
	Offset    int
}
