// Package owner restricts reads and writes to the authenticated user's rows.
package owner

import "gorm.io/gorm"

// Scope returns a GORM scope that filters by user_id. Rows without an owner
// never match.
func Scope(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
