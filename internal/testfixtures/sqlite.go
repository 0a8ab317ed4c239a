package testfixtures

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/example/school-dashboard/internal/persistence/sqlite"
)

// NewSQLiteStore opens a migrated snapshot store backed by a temporary
// SQLite file for integration-style persistence tests. The store is closed
// automatically when the test finishes.
func NewSQLiteStore(tb testing.TB) *sqlite.Store {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "dashboard.db")
	store, err := sqlite.Open(fmt.Sprintf("file:%s", path))
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	tb.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
