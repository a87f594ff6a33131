// Package testutil provides shared helpers for tests that need a real
// database.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/inbox-ledger/internal/storage"
)

// SetupTestDB creates a migrated SQLite database in a per-test temp
// directory and registers cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
