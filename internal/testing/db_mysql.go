//go:build mysql

package testing

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/carlosnayan/hrmanager/internal/driver"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// SetupMySQLTestDB creates a throwaway MySQL database. It skips when the
// server is not reachable.
func SetupMySQLTestDB(t *testing.T) (driver.Database, func()) {
	baseURL := GetTestDatabaseURL("mysql")
	if baseURL == "" {
		t.Skip("TEST_DATABASE_URL_MYSQL not set, skipping MySQL test")
		return nil, nil
	}

	adminDSN, err := driver.MySQLDSN(removeDatabaseFromURL(baseURL))
	if err != nil {
		t.Fatalf("invalid MySQL url: %v", err)
	}
	admin, err := sql.Open("mysql", adminDSN)
	if err != nil {
		t.Skipf("failed to open MySQL connection: %v", err)
		return nil, nil
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := admin.PingContext(ctx); err != nil {
		t.Skipf("MySQL not available: %v", err)
		return nil, nil
	}

	testDBName := fmt.Sprintf("hrmanager_test_%d", time.Now().UnixNano())
	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", testDBName)); err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	dropDatabase := func() {
		cleanupDB, err := sql.Open("mysql", adminDSN)
		if err == nil {
			cleanupDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", testDBName))
			cleanupDB.Close()
		}
	}

	db, err := driver.Open(context.Background(), driver.Options{
		Provider: "mysql",
		URL:      replaceDatabaseName(baseURL, testDBName),
	})
	if err != nil {
		dropDatabase()
		t.Skipf("failed to connect to test database: %v", err)
		return nil, nil
	}

	cleanup := func() {
		db.Close()
		dropDatabase()
	}
	return db, cleanup
}
