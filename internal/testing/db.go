package testing

import (
	"os"
	"testing"

	"github.com/carlosnayan/hrmanager/internal/dialect"
	"github.com/carlosnayan/hrmanager/internal/driver"
)

// SetupTestDB creates an empty test database with the employees schema and
// returns it with its dialect. The database is removed when the test ends.
// Driver-specific implementations are in separate files with build tags.
func SetupTestDB(t *testing.T, provider string) (driver.Database, dialect.Dialect) {
	t.Helper()

	var (
		db      driver.Database
		cleanup func()
	)
	switch provider {
	case "postgresql":
		db, cleanup = SetupPostgreSQLTestDB(t)
	case "mysql":
		db, cleanup = SetupMySQLTestDB(t)
	case "sqlite":
		db, cleanup = SetupSQLiteTestDB(t)
	default:
		t.Fatalf("unsupported provider: %s", provider)
	}
	t.Cleanup(cleanup)

	d := dialect.GetDialect(provider)
	CreateSchema(t, db, d)
	return db, d
}

// GetTestDatabaseURL gets test database URL from environment variables
func GetTestDatabaseURL(provider string) string {
	var envVar string
	switch provider {
	case "postgresql":
		envVar = os.Getenv("TEST_DATABASE_URL_POSTGRESQL")
	case "mysql":
		envVar = os.Getenv("TEST_DATABASE_URL_MYSQL")
	case "sqlite":
		envVar = os.Getenv("TEST_DATABASE_URL_SQLITE")
	}
	if envVar == "" {
		envVar = os.Getenv("TEST_DATABASE_URL")
	}
	return envVar
}

// replaceDatabaseName replaces the database name in a URL, keeping the
// query string
//
//nolint:unused // Used by files with build tags
func replaceDatabaseName(url, dbName string) string {
	if url == "" {
		return url
	}

	lastSlash := lastIndexByte(url, '/')
	if lastSlash == -1 {
		return url + "/" + dbName
	}

	if queryStart := indexByteFrom(url, '?', lastSlash); queryStart != -1 {
		return url[:lastSlash+1] + dbName + url[queryStart:]
	}
	return url[:lastSlash+1] + dbName
}

// removeDatabaseFromURL strips the database name, keeping the query string
//
//nolint:unused // Used by files with build tags
func removeDatabaseFromURL(url string) string {
	lastSlash := lastIndexByte(url, '/')
	if lastSlash == -1 {
		return url
	}

	if queryStart := indexByteFrom(url, '?', lastSlash); queryStart != -1 {
		return url[:lastSlash+1] + url[queryStart:]
	}
	return url[:lastSlash+1]
}

func lastIndexByte(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
