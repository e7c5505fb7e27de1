package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Armory_Go/internal/domain"
)

type slugged struct {
	Slug   string        `json:"slug" validate:"required,slug"`
	Rarity domain.Rarity `json:"rarity" validate:"omitempty,rarity"`
}

func TestValidator_Slug(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"simple", "iron_sword", false},
		{"hyphenated", "dragon-plate", false},
		{"digits", "tier2_helm", false},
		{"single char", "a", false},
		{"empty is required", "", true},
		{"upper case", "Iron_Sword", true},
		{"space", "iron sword", true},
		{"leading separator", "_iron", true},
		{"trailing separator", "iron_", true},
		{"double separator", "iron__sword", true},
		{"unicode", "épée", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(slugged{Slug: tt.slug})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Rarity(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(slugged{Slug: "a", Rarity: domain.RarityEpic}))
	assert.NoError(t, v.ValidateStruct(slugged{Slug: "a"}))
	assert.Error(t, v.ValidateStruct(slugged{Slug: "a", Rarity: "epic"}))
	assert.Error(t, v.ValidateStruct(slugged{Slug: "a", Rarity: "MYTHIC"}))
}

func TestFormatValidationError_UsesJSONPaths(t *testing.T) {
	req := BulkHeroesRequest{Heroes: []domain.Hero{
		{Slug: "knight", Name: "Knight", Class: "warrior"},
		{Slug: "Bad Slug", Name: "", Class: "mage"},
	}}

	err := GetValidator().ValidateStruct(req)
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Contains(t, fields, "heroes[1].slug")
	assert.Contains(t, fields, "heroes[1].name")
	assert.Equal(t, "This field is required", fields["heroes[1].name"])
	assert.NotContains(t, fields, "heroes[0].slug")
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, map[string]string{"error": ErrMsgInvalidRequestFormat}, fields)
	assert.Nil(t, FormatValidationError(nil))
}
