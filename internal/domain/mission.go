package domain

import "time"

// Mission is a playable stage with its rewards
type Mission struct {
	ID              int             `json:"id" db:"mission_id"`
	Slug            string          `json:"slug" db:"slug" validate:"required,max=100,slug"`
	Name            string          `json:"name" db:"name" validate:"required,max=100"`
	Difficulty      int             `json:"difficulty" db:"difficulty" validate:"min=1,max=10"`
	EnergyCost      int             `json:"energy_cost" db:"energy_cost" validate:"min=0"`
	RewardGold      int             `json:"reward_gold" db:"reward_gold" validate:"min=0"`
	RewardEquipment []MissionReward `json:"reward_equipment,omitempty" db:"reward_equipment" validate:"dive"`
	CreatedAt       time.Time       `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty" db:"updated_at"`
}

// MissionReward is an equipment drop granted by a mission
type MissionReward struct {
	EquipmentSlug string  `json:"equipment_slug" validate:"required,slug"`
	Quantity      int     `json:"quantity" validate:"min=1"`
	DropRate      float64 `json:"drop_rate" validate:"gt=0,lte=1"`
}

// MissionFilter narrows mission listings
type MissionFilter struct {
	MinDifficulty int
	MaxDifficulty int
	Limit         int
	Offset        int
}
