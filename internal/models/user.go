package models

import (
	"time"

	"gorm.io/datatypes"
)

// Gender is the closed set of values accepted for a user's profile.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderDiverse Gender = "diverse"
)

// ParseGender maps a boundary string onto a Gender. An empty string is not a gender.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale, GenderDiverse:
		return g, true
	}
	return "", false
}

// User owns BMI records, weight goals and programs. Email is stored lower-cased.
type User struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Email     string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string          `gorm:"not null" json:"-"`
	Gender    *Gender         `gorm:"size:20" json:"gender"`
	BirthDate *datatypes.Date `json:"birth_date"`
	Height    *float64        `json:"height"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
