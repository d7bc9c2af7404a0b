// Package testutil holds helpers shared by database-backed tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/storyhour/storysign/internal/db"
)

// NewTestDB opens a migrated in-memory session log tied to the test's
// lifetime.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test session log: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
