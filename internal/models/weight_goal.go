package models

import (
	"time"

	"gorm.io/datatypes"
)

// WeightGoal is schema only; no endpoint reads or writes it yet.
type WeightGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	User          *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TargetWeight  float64         `gorm:"not null" json:"target_weight"`
	CurrentWeight *float64        `json:"current_weight"`
	TargetDate    *datatypes.Date `json:"target_date"`
	Status        string          `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
