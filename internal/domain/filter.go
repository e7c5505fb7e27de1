package domain

// NormalizeLimit clamps a requested page size to the supported range
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// IsValidSlot checks if a slot string is valid (empty string is valid = no filter)
func IsValidSlot(slot string) bool {
	switch slot {
	case "", SlotWeapon, SlotArmor, SlotHelmet, SlotBoots, SlotAccessory, SlotMaterial:
		return true
	}
	return false
}
