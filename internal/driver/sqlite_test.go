//go:build sqlite

package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func setupSQLiteTestDB(t *testing.T) Database {
	dbPath := filepath.Join(t.TempDir(), "driver_test.db")

	db, err := Open(context.Background(), Options{Provider: "sqlite", URL: "sqlite:" + dbPath})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

// TestSQLDBAdapter_SQLite tests the database/sql adapter with SQLite
func TestSQLDBAdapter_SQLite(t *testing.T) {
	db := setupSQLiteTestDB(t)
	ctx := context.Background()

	conn, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "CREATE TABLE test_table (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	result, err := conn.Exec(ctx, "INSERT INTO test_table (id, name) VALUES (?, ?), (?, ?)", 1, "a", 2, "b")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if result.RowsAffected() != 2 {
		t.Errorf("RowsAffected() = %d, want 2", result.RowsAffected())
	}

	rows, err := conn.Query(ctx, "SELECT name FROM test_table ORDER BY id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err() = %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}

	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM test_table").Scan(&count); err != nil {
		t.Fatalf("QueryRow Scan failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestOpen_SQLiteAppliesPoolConfig(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pool_test.db")

	db, err := Open(context.Background(), Options{
		Provider: "sqlite",
		URL:      "sqlite:" + dbPath,
		Pool:     &PoolConfig{MaxOpenConns: 3, MaxIdleConns: 1},
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	adapter, ok := db.(*SQLDBAdapter)
	if !ok {
		t.Fatalf("Open() returned %T, want *SQLDBAdapter", db)
	}
	if got := adapter.SQLDB().Stats().MaxOpenConnections; got != 3 {
		t.Errorf("MaxOpenConnections = %d, want 3", got)
	}
}
