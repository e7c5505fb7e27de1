package domain

// Equipment slots
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotHelmet    = "helmet"
	SlotBoots     = "boots"
	SlotAccessory = "accessory"
	SlotMaterial  = "material" // crafting-only items such as fragments and ores
)

// SlugPattern is the accepted shape of catalog slugs (equipment, heroes, missions)
const SlugPattern = `^[a-z0-9]+(?:[_-][a-z0-9]+)*$`

// Pagination defaults for list queries
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)
