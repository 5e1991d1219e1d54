// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/bmi-backend/internal/database"
	"gorm.io/gorm"
)

// Open opens a migrated SQLite database in a per-test directory and
// closes it when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "bmi.db"),
		DBBusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
