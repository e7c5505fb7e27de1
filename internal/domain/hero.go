package domain

import "time"

// Hero is a recruitable character template
type Hero struct {
	ID               int            `json:"id" db:"hero_id"`
	Slug             string         `json:"slug" db:"slug" validate:"required,max=100,slug"`
	Name             string         `json:"name" db:"name" validate:"required,max=100"`
	Class            string         `json:"class" db:"class" validate:"required,max=50"`
	Rarity           Rarity         `json:"rarity" db:"rarity" validate:"omitempty,rarity"`
	BaseStats        map[string]int `json:"base_stats,omitempty" db:"base_stats"`
	DefaultEquipment []string       `json:"default_equipment,omitempty" db:"default_equipment" validate:"dive,slug"`
	CreatedAt        time.Time      `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at,omitempty" db:"updated_at"`
}

// HeroFilter narrows hero listings
type HeroFilter struct {
	Class  string
	Rarity Rarity
	Limit  int
	Offset int
}
