//go:build sqlite

package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/carlosnayan/hrmanager/internal/driver"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SetupSQLiteTestDB opens a SQLite database in a temp file
func SetupSQLiteTestDB(t *testing.T) (driver.Database, func()) {
	dbPath := filepath.Join(t.TempDir(), "hrmanager_test.db")

	db, err := driver.Open(context.Background(), driver.Options{
		Provider: "sqlite",
		URL:      "sqlite:" + dbPath,
		Pool:     &driver.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	if err != nil {
		t.Fatalf("failed to open SQLite database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}
