// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"testing"

	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/config"
	"github.com/finanzas-pareja/ledger/internal/infra/db"
)

// New returns a private in-memory SQLite database with the full schema.
// It is closed when the test ends.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	database, err := db.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    ":memory:",
	})
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(); err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}
	return database.DB()
}
