package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProgramStatus string

const (
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramCancelled ProgramStatus = "cancelled"
)

// UserProgram records that a user started a fitness or nutrition program.
type UserProgram struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	User        *User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProgramType string          `gorm:"size:100;not null" json:"program_type"`
	ProgramName string          `gorm:"size:255;not null" json:"program_name"`
	Description *string         `gorm:"type:text" json:"description"`
	StartDate   datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate     *datatypes.Date `json:"end_date"`
	Status      ProgramStatus   `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}
