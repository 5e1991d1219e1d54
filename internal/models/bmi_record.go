package models

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/bmi"
)

// BmiRecord is a single measurement. BMI and Status are derived at write time
// and stored; they are never recomputed on read.
//
// UserID is nullable only for rows that predate authentication. Such rows are
// never returned by owner-scoped queries.
type BmiRecord struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uint      `gorm:"index" json:"user_id"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string     `gorm:"size:255" json:"name"`
	Email     string     `gorm:"size:255" json:"email"`
	Age       *int       `json:"age"`
	Height    float64    `gorm:"not null" json:"height"`
	Weight    float64    `gorm:"not null" json:"weight"`
	BMI       float64    `gorm:"column:bmi;not null" json:"bmi"`
	Status    bmi.Status `gorm:"size:32;not null" json:"status"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}
