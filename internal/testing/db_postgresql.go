//go:build pgx

package testing

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/carlosnayan/hrmanager/internal/driver"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for the admin connection
)

// SetupPostgreSQLTestDB creates a throwaway PostgreSQL database and opens a
// pgx pool on it
func SetupPostgreSQLTestDB(t *testing.T) (driver.Database, func()) {
	baseURL := GetTestDatabaseURL("postgresql")
	if baseURL == "" {
		t.Skip("TEST_DATABASE_URL_POSTGRESQL not set, skipping PostgreSQL test")
		return nil, nil
	}

	adminURL := replaceDatabaseName(baseURL, "postgres")
	admin, err := sql.Open("pgx", adminURL)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	defer admin.Close()

	testDBName := fmt.Sprintf("hrmanager_test_%d", time.Now().UnixNano())
	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", testDBName)); err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	dropDatabase := func() {
		cleanupDB, err := sql.Open("pgx", adminURL)
		if err == nil {
			cleanupDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", testDBName))
			cleanupDB.Close()
		}
	}

	db, err := driver.Open(context.Background(), driver.Options{
		Provider: "postgresql",
		URL:      replaceDatabaseName(baseURL, testDBName),
	})
	if err != nil {
		dropDatabase()
		t.Fatalf("failed to open test database: %v", err)
	}

	cleanup := func() {
		db.Close()
		dropDatabase()
	}
	return db, cleanup
}
