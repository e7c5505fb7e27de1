package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipment_IsCraftable(t *testing.T) {
	assert.True(t, (&Equipment{CraftGoldCost: 50}).IsCraftable())
	assert.False(t, (&Equipment{CraftGoldCost: 0}).IsCraftable())
}

func TestRarity_IsValid(t *testing.T) {
	assert.True(t, Rarity("").IsValid())
	assert.True(t, RarityLegendary.IsValid())
	assert.False(t, Rarity("mythic").IsValid())
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultListLimit, NormalizeLimit(-5))
	assert.Equal(t, 25, NormalizeLimit(25))
	assert.Equal(t, MaxListLimit, NormalizeLimit(MaxListLimit+1))
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot(""))
	assert.True(t, IsValidSlot(SlotMaterial))
	assert.False(t, IsValidSlot("cape"))
}
